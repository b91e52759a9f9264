package member

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docterbee/membership-system/internal/httperr"
)

func TestAdjustTransaction(t *testing.T) {
	repo := newStubMemberRepo()

	m, err := NewRegister(repo).Execute(context.Background(), validInput())
	require.NoError(t, err)

	uc := NewAdjustTransaction(repo, newTestDispatcher())
	actor := Actor{ID: 1, Name: "admin"}

	count, err := uc.Execute(context.Background(), m.ID, 3, actor)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// Overshooting downward clamps at zero instead of going negative.
	count, err = uc.Execute(context.Background(), m.ID, -10, actor)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	stored, err := repo.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.PurchaseCount)
}

func TestAdjustTransaction_MemberNotFound(t *testing.T) {
	uc := NewAdjustTransaction(newStubMemberRepo(), newTestDispatcher())

	_, err := uc.Execute(context.Background(), 999, 1, Actor{ID: 1, Name: "admin"})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
