package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/docterbee/membership-system/internal/domain/admin"
	"github.com/docterbee/membership-system/internal/httperr"
)

func seedAdmin(t *testing.T, repo *stubAdminRepo, username, password, role string) uint {
	t.Helper()

	id, err := NewCreateAdmin(repo, newTestDispatcher()).Execute(context.Background(), CreateInput{
		Username: username,
		Password: password,
		Role:     role,
	}, Actor{ID: 0, Name: "system"})
	require.NoError(t, err)
	return id
}

func TestAuthenticate_Success(t *testing.T) {
	repo := newStubAdminRepo()
	id := seedAdmin(t, repo, "siti", "secret123", domain.RoleAdmin)

	summary, err := NewAuthenticate(repo).Execute(context.Background(), "siti", "secret123")
	require.NoError(t, err)

	assert.Equal(t, id, summary.ID)
	assert.Equal(t, "siti", summary.Username)
	assert.Equal(t, domain.RoleAdmin, summary.Role)

	stored, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := newStubAdminRepo()
	seedAdmin(t, repo, "siti", "secret123", domain.RoleAdmin)

	_, err := NewAuthenticate(repo).Execute(context.Background(), "siti", "nope")
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindAuth))
}

func TestAuthenticate_UnknownOrInactive(t *testing.T) {
	repo := newStubAdminRepo()
	id := seedAdmin(t, repo, "siti", "secret123", domain.RoleAdmin)

	_, err := NewAuthenticate(repo).Execute(context.Background(), "nobody", "secret123")
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	// Deactivated accounts look exactly like missing ones.
	repo.mu.Lock()
	repo.admins[id].IsActive = false
	repo.mu.Unlock()

	_, err = NewAuthenticate(repo).Execute(context.Background(), "siti", "secret123")
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestAuthenticate_MissingCredentials(t *testing.T) {
	_, err := NewAuthenticate(newStubAdminRepo()).Execute(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}

func TestCreateAdmin_Validation(t *testing.T) {
	repo := newStubAdminRepo()
	seedAdmin(t, repo, "siti", "secret123", domain.RoleAdmin)

	uc := NewCreateAdmin(repo, newTestDispatcher())
	actor := Actor{ID: 1, Name: "siti"}

	_, err := uc.Execute(context.Background(), CreateInput{Username: "budi", Password: "short"}, actor)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 6 characters")

	_, err = uc.Execute(context.Background(), CreateInput{Username: "siti", Password: "secret123"}, actor)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")

	_, err = uc.Execute(context.Background(), CreateInput{Username: "budi", Password: "secret123", Role: "root"}, actor)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}

func TestCreateAdmin_DefaultsToModerator(t *testing.T) {
	repo := newStubAdminRepo()

	id, err := NewCreateAdmin(repo, newTestDispatcher()).Execute(context.Background(), CreateInput{
		Username: "budi",
		Password: "secret123",
	}, Actor{ID: 1, Name: "siti"})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleModerator, stored.Role)
	assert.True(t, stored.IsActive)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestDeleteAdmin(t *testing.T) {
	repo := newStubAdminRepo()
	sitiID := seedAdmin(t, repo, "siti", "secret123", domain.RoleAdmin)
	budiID := seedAdmin(t, repo, "budi", "secret123", domain.RoleModerator)

	uc := NewDeleteAdmin(repo, newTestDispatcher())

	require.NoError(t, uc.Execute(context.Background(), budiID, Actor{ID: sitiID, Name: "siti"}))

	_, err := repo.GetByID(context.Background(), budiID)
	require.Error(t, err)
}

func TestDeleteAdmin_SelfDelete(t *testing.T) {
	repo := newStubAdminRepo()
	sitiID := seedAdmin(t, repo, "siti", "secret123", domain.RoleAdmin)

	err := NewDeleteAdmin(repo, newTestDispatcher()).Execute(context.Background(), sitiID, Actor{ID: sitiID, Name: "siti"})
	require.Error(t, err)

	// Self-delete wins over last-admin even when both apply.
	assert.Contains(t, err.Error(), "own account")
}

func TestDeleteAdmin_LastAdmin(t *testing.T) {
	repo := newStubAdminRepo()
	sitiID := seedAdmin(t, repo, "siti", "secret123", domain.RoleAdmin)

	err := NewDeleteAdmin(repo, newTestDispatcher()).Execute(context.Background(), sitiID, Actor{ID: 99, Name: "other"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "last admin")
}

func TestDeleteAdmin_NotFound(t *testing.T) {
	repo := newStubAdminRepo()
	sitiID := seedAdmin(t, repo, "siti", "secret123", domain.RoleAdmin)

	err := NewDeleteAdmin(repo, newTestDispatcher()).Execute(context.Background(), 404, Actor{ID: sitiID, Name: "siti"})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestBootstrap(t *testing.T) {
	repo := newStubAdminRepo()
	uc := NewBootstrap(repo)

	require.NoError(t, uc.Execute(context.Background(), "operator-secret"))

	count, _ := repo.Count(context.Background())
	assert.EqualValues(t, 1, count)

	summary, err := NewAuthenticate(repo).Execute(context.Background(), "admin", "operator-secret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, summary.Role)

	// A second run against a non-empty table is a no-op.
	require.NoError(t, uc.Execute(context.Background(), "other-secret"))
	count, _ = repo.Count(context.Background())
	assert.EqualValues(t, 1, count)
}

func TestBootstrap_GeneratesPasswordWhenUnset(t *testing.T) {
	repo := newStubAdminRepo()

	require.NoError(t, NewBootstrap(repo).Execute(context.Background(), ""))

	a, err := repo.GetActiveByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, a.PasswordHash)
}
