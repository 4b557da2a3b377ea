package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/infrastructure/memory"
	"github.com/jhoicas/Hospital-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setup(t *testing.T, active bool) (*AuthUseCase, string) {
	t.Helper()
	repo := memory.NewUserRepository(memory.NewStore())
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{Username: "admin", PasswordHash: string(hash), Role: entity.RoleAdmin, IsActive: active}
	require.NoError(t, repo.Create(context.Background(), u))
	return NewAuthUseCase(repo, JWTConfig{Secret: "test-secret", ExpMinutes: 5, Issuer: "hnsm"}), u.ID
}

func TestLogin_OK(t *testing.T) {
	uc, id := setup(t, true)
	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: " Admin ", Password: "password"})
	require.NoError(t, err)
	assert.Equal(t, id, resp.User.ID)

	userID, role, err := jwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, id, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_BadCredentials(t *testing.T) {
	uc, _ := setup(t, true)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "nope"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "password"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "", Password: ""})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestLogin_InactiveUser(t *testing.T) {
	uc, _ := setup(t, false)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "password"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	assert.False(t, errors.Is(err, domain.ErrForbidden), "no revela cuentas deshabilitadas")
}

func TestMe(t *testing.T) {
	uc, id := setup(t, true)
	me, err := uc.Me(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "admin", me.Username)

	_, err = uc.Me(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}
