package identity

import (
	"context"
	"testing"

	"github.com/jordanlanch/touchpoint/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticDirectory_Resolve(t *testing.T) {
	ctx := context.Background()
	dir := NewStaticDirectory(99, []int{10, 11})
	dir.SetOwner(EntityRef{Type: "lead", ID: 1}, 42)

	t.Run("Success - entity owner", func(t *testing.T) {
		userID, err := dir.Resolve(ctx, domain.AssignEntityOwner, EntityRef{Type: "lead", ID: 1}, 0)
		require.NoError(t, err)
		assert.Equal(t, 42, userID)
	})

	t.Run("Success - unknown entity falls back to default owner", func(t *testing.T) {
		userID, err := dir.Resolve(ctx, domain.AssignEntityOwner, EntityRef{Type: "lead", ID: 777}, 0)
		require.NoError(t, err)
		assert.Equal(t, 99, userID)
	})

	t.Run("Success - specific user", func(t *testing.T) {
		userID, err := dir.Resolve(ctx, domain.AssignSpecificUser, EntityRef{}, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, userID)
	})

	t.Run("Error - specific user without id", func(t *testing.T) {
		_, err := dir.Resolve(ctx, domain.AssignSpecificUser, EntityRef{}, 0)
		assert.Error(t, err)
	})

	t.Run("Success - field staff rotates round-robin", func(t *testing.T) {
		first, err := dir.Resolve(ctx, domain.AssignFieldStaff, EntityRef{}, 0)
		require.NoError(t, err)
		second, err := dir.Resolve(ctx, domain.AssignFieldStaff, EntityRef{}, 0)
		require.NoError(t, err)
		third, err := dir.Resolve(ctx, domain.AssignFieldStaff, EntityRef{}, 0)
		require.NoError(t, err)

		assert.Equal(t, []int{10, 11, 10}, []int{first, second, third})
	})

	t.Run("Error - unknown rule", func(t *testing.T) {
		_, err := dir.Resolve(ctx, domain.AssigneeRule("robot"), EntityRef{}, 0)
		assert.Error(t, err)
	})
}

func TestStaticDirectory_EmptyPoolFallsBack(t *testing.T) {
	dir := NewStaticDirectory(5, nil)

	userID, err := dir.Resolve(context.Background(), domain.AssignFieldStaff, EntityRef{}, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, userID)
}
