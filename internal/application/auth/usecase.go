package auth

import (
	"context"
	"time"

	"github.com/tu-usuario/it-supplies-api/internal/application/audit"
	"github.com/tu-usuario/it-supplies-api/internal/application/dto"
	"github.com/tu-usuario/it-supplies-api/internal/domain"
	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
	"github.com/tu-usuario/it-supplies-api/internal/domain/repository"
	"github.com/tu-usuario/it-supplies-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, cambio de contraseña propia
// y verificación del usuario del token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	recorder audit.Sink
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, hasher PasswordHasher, recorder audit.Sink, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, hasher: hasher, recorder: recorder, jwtCfg: jwtCfg}
}

// Login verifica username/password, actualiza last_login, genera JWT y audita.
// El llamador recibe el mismo ErrInvalidCredentials tanto si el usuario no
// existe como si la contraseña no coincide; el motivo real queda solo en el
// detalle de la entrada USER_LOGIN_FAILED.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest, meta audit.RequestMeta) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.recorder.Record(ctx, entity.ActionUserLoginFailed, nil, map[string]any{
			"username": in.Username,
			"reason":   "user not found",
		}, meta)
		return nil, domain.ErrInvalidCredentials
	}
	if err := uc.hasher.Compare(user.PasswordHash, in.Password); err != nil {
		uc.recorder.Record(ctx, entity.ActionUserLoginFailed, &user.ID, map[string]any{
			"reason": "invalid password",
		}, meta)
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.IsAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, entity.ActionUserLogin, &user.ID, map[string]any{
		"username": user.Username,
	}, meta)

	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ChangePassword cambia la contraseña del propio usuario. Falla con
// ErrInvalidCredentials si la contraseña actual no coincide; si cambia,
// limpia force_password_change.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest, meta audit.RequestMeta) error {
	if in.NewPassword == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := uc.hasher.Compare(user.PasswordHash, in.CurrentPassword); err != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := uc.hasher.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.ForcePasswordChange = false
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}

	uc.recorder.Record(ctx, entity.ActionUserPasswordChanged, &user.ID, map[string]any{}, meta)
	return nil
}

// Verify devuelve el usuario asociado a un token ya validado por el middleware.
func (uc *AuthUseCase) Verify(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return ToUserResponse(user), nil
}

// ToUserResponse mapea la entidad a la respuesta pública (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                  u.ID,
		Username:            u.Username,
		IsAdmin:             u.IsAdmin,
		ForcePasswordChange: u.ForcePasswordChange,
		LastLogin:           u.LastLogin,
		CreatedAt:           u.CreatedAt,
	}
}
