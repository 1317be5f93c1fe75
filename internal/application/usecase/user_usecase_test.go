package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/it-supplies-api/internal/application/auth"
	"github.com/tu-usuario/it-supplies-api/internal/application/dto"
	"github.com/tu-usuario/it-supplies-api/internal/application/usecase"
	"github.com/tu-usuario/it-supplies-api/internal/domain"
	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
)

func protectedAdmin() *entity.User {
	return &entity.User{
		ID:        "admin-id",
		Username:  entity.DefaultAdminUsername,
		IsAdmin:   true,
		Protected: true,
	}
}

func TestUserCreate_OK_ForzadoDeCambioPorDefecto(t *testing.T) {
	repo := new(UserRepoMock)
	sink := &SinkSpy{}
	uc := usecase.NewUserUseCase(repo, auth.BcryptHasher{}, sink)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "jperez" &&
			u.ForcePasswordChange &&
			u.PasswordHash != "" && u.PasswordHash != "clave123"
	})).Return(nil).Once()

	out, err := uc.Create(context.Background(), actorID, dto.CreateUserRequest{
		Username: "jperez",
		Password: "clave123",
	}, testMeta)

	require.NoError(t, err)
	assert.True(t, out.ForcePasswordChange)

	require.Len(t, sink.Entries, 1)
	assert.Equal(t, entity.ActionUserCreated, sink.Entries[0].Action)
	assert.Equal(t, "jperez", sink.Entries[0].Details["username"])
	repo.AssertExpectations(t)
}

func TestUserCreate_UsernameDuplicado(t *testing.T) {
	repo := new(UserRepoMock)
	sink := &SinkSpy{}
	uc := usecase.NewUserUseCase(repo, auth.BcryptHasher{}, sink)

	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateUsername).Once()

	_, err := uc.Create(context.Background(), actorID, dto.CreateUserRequest{
		Username: "jperez",
		Password: "clave123",
	}, testMeta)

	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	assert.Empty(t, sink.Entries)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuario protegido: ninguna mutación lo alcanza
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUpdate_ProtegidoRechazado(t *testing.T) {
	repo := new(UserRepoMock)
	sink := &SinkSpy{}
	uc := usecase.NewUserUseCase(repo, auth.BcryptHasher{}, sink)

	repo.On("GetByID", mock.Anything, "admin-id").Return(protectedAdmin(), nil).Once()

	_, err := uc.Update(context.Background(), actorID, "admin-id", dto.UpdateUserRequest{Username: "otro"}, testMeta)

	assert.ErrorIs(t, err, domain.ErrProtectedUser)
	assert.Empty(t, sink.Entries)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserDelete_ProtegidoRechazado(t *testing.T) {
	repo := new(UserRepoMock)
	uc := usecase.NewUserUseCase(repo, auth.BcryptHasher{}, &SinkSpy{})

	repo.On("GetByID", mock.Anything, "admin-id").Return(protectedAdmin(), nil).Once()

	err := uc.Delete(context.Background(), actorID, "admin-id", testMeta)

	assert.ErrorIs(t, err, domain.ErrProtectedUser)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserResetPassword_ProtegidoRechazado(t *testing.T) {
	repo := new(UserRepoMock)
	uc := usecase.NewUserUseCase(repo, auth.BcryptHasher{}, &SinkSpy{})

	repo.On("GetByID", mock.Anything, "admin-id").Return(protectedAdmin(), nil).Once()

	err := uc.ResetPassword(context.Background(), actorID, "admin-id", "nueva-clave", testMeta)

	assert.ErrorIs(t, err, domain.ErrProtectedUser)
}

func TestUserToggleAdmin_ProtegidoRechazado(t *testing.T) {
	repo := new(UserRepoMock)
	uc := usecase.NewUserUseCase(repo, auth.BcryptHasher{}, &SinkSpy{})

	repo.On("GetByID", mock.Anything, "admin-id").Return(protectedAdmin(), nil).Once()

	_, err := uc.ToggleAdmin(context.Background(), actorID, "admin-id", testMeta)

	assert.ErrorIs(t, err, domain.ErrProtectedUser)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones sobre usuarios comunes
// ──────────────────────────────────────────────────────────────────────────────

func TestUserResetPassword_FuerzaCambio(t *testing.T) {
	repo := new(UserRepoMock)
	sink := &SinkSpy{}
	uc := usecase.NewUserUseCase(repo, auth.BcryptHasher{}, sink)

	user := &entity.User{ID: "u1", Username: "jperez", PasswordHash: "hash-viejo"}
	repo.On("GetByID", mock.Anything, "u1").Return(user, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.ForcePasswordChange && u.PasswordHash != "hash-viejo"
	})).Return(nil).Once()

	err := uc.ResetPassword(context.Background(), actorID, "u1", "clave-nueva", testMeta)

	require.NoError(t, err)
	require.Len(t, sink.Entries, 1)
	assert.Equal(t, entity.ActionUserPasswordReset, sink.Entries[0].Action)
	repo.AssertExpectations(t)
}

func TestUserToggleAdmin_AccionSegunResultado(t *testing.T) {
	repo := new(UserRepoMock)
	sink := &SinkSpy{}
	uc := usecase.NewUserUseCase(repo, auth.BcryptHasher{}, sink)

	repo.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", Username: "jperez", IsAdmin: false}, nil).Once()
	repo.On("Update", mock.Anything, mock.Anything).Return(nil).Twice()
	repo.On("GetByID", mock.Anything, "u2").Return(&entity.User{ID: "u2", Username: "mlopez", IsAdmin: true}, nil).Once()

	out, err := uc.ToggleAdmin(context.Background(), actorID, "u1", testMeta)
	require.NoError(t, err)
	assert.True(t, out.IsAdmin)

	out, err = uc.ToggleAdmin(context.Background(), actorID, "u2", testMeta)
	require.NoError(t, err)
	assert.False(t, out.IsAdmin)

	assert.Equal(t, []string{entity.ActionUserAdminGranted, entity.ActionUserAdminRevoked}, sink.Actions())
}

func TestUserDelete_OK_UnaEntradaDeAuditoria(t *testing.T) {
	repo := new(UserRepoMock)
	sink := &SinkSpy{}
	uc := usecase.NewUserUseCase(repo, auth.BcryptHasher{}, sink)

	repo.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", Username: "jperez"}, nil).Once()
	repo.On("Delete", mock.Anything, "u1").Return(nil).Once()

	err := uc.Delete(context.Background(), actorID, "u1", testMeta)

	require.NoError(t, err)
	require.Len(t, sink.Entries, 1, "exactamente una entrada por mutación")
	assert.Equal(t, entity.ActionUserDeleted, sink.Entries[0].Action)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuario de arranque
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureDefaultAdmin_CreaSiNoExiste(t *testing.T) {
	repo := new(UserRepoMock)
	uc := usecase.NewUserUseCase(repo, auth.BcryptHasher{}, &SinkSpy{})

	repo.On("GetByUsername", mock.Anything, entity.DefaultAdminUsername).Return(nil, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == entity.DefaultAdminUsername &&
			u.IsAdmin && u.Protected && !u.ForcePasswordChange
	})).Return(nil).Once()

	admin, err := uc.EnsureDefaultAdmin(context.Background(), "12@Sup34*")

	require.NoError(t, err)
	assert.True(t, admin.Protected)
	repo.AssertExpectations(t)
}

func TestEnsureDefaultAdmin_Idempotente(t *testing.T) {
	repo := new(UserRepoMock)
	uc := usecase.NewUserUseCase(repo, auth.BcryptHasher{}, &SinkSpy{})

	repo.On("GetByUsername", mock.Anything, entity.DefaultAdminUsername).
		Return(protectedAdmin(), nil).Once()

	admin, err := uc.EnsureDefaultAdmin(context.Background(), "12@Sup34*")

	require.NoError(t, err)
	assert.Equal(t, "admin-id", admin.ID)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnsureDefaultAdmin_CarreraEntreInstancias(t *testing.T) {
	repo := new(UserRepoMock)
	uc := usecase.NewUserUseCase(repo, auth.BcryptHasher{}, &SinkSpy{})

	repo.On("GetByUsername", mock.Anything, entity.DefaultAdminUsername).Return(nil, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateUsername).Once()
	repo.On("GetByUsername", mock.Anything, entity.DefaultAdminUsername).
		Return(protectedAdmin(), nil).Once()

	admin, err := uc.EnsureDefaultAdmin(context.Background(), "12@Sup34*")

	require.NoError(t, err)
	assert.Equal(t, "admin-id", admin.ID)
	repo.AssertExpectations(t)
}

func TestUserList_MapeaSinHash(t *testing.T) {
	repo := new(UserRepoMock)
	uc := usecase.NewUserUseCase(repo, auth.BcryptHasher{}, &SinkSpy{})

	repo.On("List", mock.Anything).Return([]*entity.User{
		{ID: "u1", Username: "jperez", PasswordHash: "secreto"},
		{ID: "u2", Username: "mlopez", IsAdmin: true},
	}, nil).Once()

	out, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "jperez", out[0].Username)
	assert.True(t, out[1].IsAdmin)
}
