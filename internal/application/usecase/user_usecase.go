package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/it-supplies-api/internal/application/audit"
	"github.com/tu-usuario/it-supplies-api/internal/application/auth"
	"github.com/tu-usuario/it-supplies-api/internal/application/dto"
	"github.com/tu-usuario/it-supplies-api/internal/domain"
	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
	"github.com/tu-usuario/it-supplies-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (operaciones de admin). Toda mutación
// verifica el flag protected del usuario de arranque y emite una entrada de
// auditoría al confirmarse.
type UserUseCase struct {
	repo     repository.UserRepository
	hasher   auth.PasswordHasher
	recorder audit.Sink
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, hasher auth.PasswordHasher, recorder audit.Sink) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher, recorder: recorder}
}

// List devuelve todos los usuarios excepto el Administrador, ordenados por username.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// Create crea un usuario nuevo. ForcePasswordChange es true salvo indicación
// explícita; falla con ErrDuplicateUsername si el nombre está tomado.
func (uc *UserUseCase) Create(ctx context.Context, actorID string, in dto.CreateUserRequest, meta audit.RequestMeta) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	force := true
	if in.ForcePasswordChange != nil {
		force = *in.ForcePasswordChange
	}
	now := time.Now()
	user := &entity.User{
		ID:                  uuid.New().String(),
		Username:            in.Username,
		PasswordHash:        hash,
		IsAdmin:             in.IsAdmin,
		ForcePasswordChange: force,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	// La unicidad la garantiza el constraint: un pre-chequeo read-then-write
	// no alcanza bajo concurrencia.
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, entity.ActionUserCreated, &actorID, map[string]any{
		"created_user_id": user.ID,
		"username":        user.Username,
		"is_admin":        user.IsAdmin,
	}, meta)
	return auth.ToUserResponse(user), nil
}

// Update renombra un usuario y/o cambia su flag admin.
func (uc *UserUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateUserRequest, meta audit.RequestMeta) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if user.Protected {
		return nil, domain.ErrProtectedUser
	}
	if in.Username != "" && in.Username != user.Username {
		existing, err := uc.repo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicateUsername
		}
		user.Username = in.Username
	}
	if in.IsAdmin != nil {
		user.IsAdmin = *in.IsAdmin
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, entity.ActionUserUpdated, &actorID, map[string]any{
		"updated_user_id": user.ID,
		"username":        user.Username,
		"is_admin":        user.IsAdmin,
	}, meta)
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario. El historial de auditoría conserva sus entradas.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string, meta audit.RequestMeta) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if user.Protected {
		return domain.ErrProtectedUser
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.recorder.Record(ctx, entity.ActionUserDeleted, &actorID, map[string]any{
		"deleted_user_id": id,
		"username":        user.Username,
	}, meta)
	return nil
}

// ResetPassword asigna una contraseña nueva y fuerza el cambio en el próximo login.
func (uc *UserUseCase) ResetPassword(ctx context.Context, actorID, id, newPassword string, meta audit.RequestMeta) error {
	if newPassword == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if user.Protected {
		return domain.ErrProtectedUser
	}
	hash, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.ForcePasswordChange = true
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return err
	}

	uc.recorder.Record(ctx, entity.ActionUserPasswordReset, &actorID, map[string]any{
		"reset_user_id": id,
		"username":      user.Username,
	}, meta)
	return nil
}

// ToggleAdmin invierte el flag admin del usuario.
func (uc *UserUseCase) ToggleAdmin(ctx context.Context, actorID, id string, meta audit.RequestMeta) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if user.Protected {
		return nil, domain.ErrProtectedUser
	}
	user.IsAdmin = !user.IsAdmin
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	action := entity.ActionUserAdminRevoked
	if user.IsAdmin {
		action = entity.ActionUserAdminGranted
	}
	uc.recorder.Record(ctx, action, &actorID, map[string]any{
		"target_user_id": id,
		"username":       user.Username,
	}, meta)
	return auth.ToUserResponse(user), nil
}

// EnsureDefaultAdmin crea el usuario de arranque si no existe (idempotente).
// Devuelve el usuario, exista o no de antes.
func (uc *UserUseCase) EnsureDefaultAdmin(ctx context.Context, password string) (*entity.User, error) {
	existing, err := uc.repo.GetByUsername(ctx, entity.DefaultAdminUsername)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	admin := &entity.User{
		ID:                  uuid.New().String(),
		Username:            entity.DefaultAdminUsername,
		PasswordHash:        hash,
		IsAdmin:             true,
		Protected:           true,
		ForcePasswordChange: false,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(ctx, admin); err != nil {
		// Otra instancia pudo crearlo entre el chequeo y el insert.
		if err == domain.ErrDuplicateUsername {
			return uc.repo.GetByUsername(ctx, entity.DefaultAdminUsername)
		}
		return nil, err
	}
	return admin, nil
}
