package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vex-labs/vex-backend/pkg/util"
)

func TestCreateUser_AssignsSequentialIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for want := uint64(1); want <= 3; want++ {
		user, err := f.users.CreateUser(ctx, "user", "user@x.com")
		require.NoError(t, err)
		assert.Equal(t, want, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
	}
}

func TestCreateUser_IDsNeverReusedAfterDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.createUser(t, "a", "a@x.com")
	second := f.createUser(t, "b", "b@x.com")
	require.NoError(t, f.users.DeleteUser(ctx, second.ID))

	third := f.createUser(t, "c", "c@x.com")
	assert.Equal(t, uint64(3), third.ID)
}

func TestGetUser_AbsenceIsAResultNotAnError(t *testing.T) {
	f := newFixture(t)

	user, ok := f.users.GetUser(context.Background(), 99)
	assert.False(t, ok)
	assert.Nil(t, user)
}

func TestGetUser_ReturnsStoredCopy(t *testing.T) {
	f := newFixture(t)
	created := f.createUser(t, "Alice", "a@x.com")

	got, ok := f.users.GetUser(context.Background(), created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestListUsers_AscendingIDOrder(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		f.createUser(t, "user", "user@x.com")
	}

	users := f.users.ListUsers(context.Background())
	require.Len(t, users, 3)
	for i, user := range users {
		assert.Equal(t, uint64(i+1), user.ID)
	}
}

func TestUpdateUser_AppliesOnlySuppliedFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.createUser(t, "Alice", "a@x.com")

	name := "Alicia"
	updated, err := f.users.UpdateUser(ctx, created.ID, UserUpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "a@x.com", updated.Email)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	email := "alicia@x.com"
	updated, err = f.users.UpdateUser(ctx, created.ID, UserUpdateInput{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "alicia@x.com", updated.Email)
}

func TestUpdateUser_NotFound(t *testing.T) {
	f := newFixture(t)

	name := "ghost"
	_, err := f.users.UpdateUser(context.Background(), 42, UserUpdateInput{Name: &name})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteUser_NotFound(t *testing.T) {
	f := newFixture(t)

	err := f.users.DeleteUser(context.Background(), 42)
	assert.True(t, apperrors.IsNotFound(err))
}
