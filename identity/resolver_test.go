package identity

import (
	"context"
	"errors"
	"testing"

	"worklog/models"
	"worklog/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserStore is a mock implementation of UserStore
type MockUserStore struct {
	mock.Mock
}

var _ UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func TestFixed_Resolve(t *testing.T) {
	resolver := Fixed{UserID: "the-one-user"}

	principal, err := resolver.Resolve(context.Background(), Credentials{})
	require.NoError(t, err)
	assert.Equal(t, "the-one-user", principal.UserID)
	assert.Empty(t, principal.SessionID)
	assert.False(t, principal.NewSession)

	// Presented credentials are irrelevant in fixed mode
	principal, err = resolver.Resolve(context.Background(), Credentials{SessionID: "whatever"})
	require.NoError(t, err)
	assert.Equal(t, "the-one-user", principal.UserID)
}

func TestDynamic_Resolve(t *testing.T) {
	t.Run("existing session wins", func(t *testing.T) {
		users := new(MockUserStore)
		sessions := session.NewStore()
		sess, err := sessions.Create("known-user")
		require.NoError(t, err)

		resolver := NewDynamic(users, sessions, "")

		principal, err := resolver.Resolve(context.Background(), Credentials{SessionID: sess.ID})
		require.NoError(t, err)
		assert.Equal(t, "known-user", principal.UserID)
		assert.Equal(t, sess.ID, principal.SessionID)
		assert.False(t, principal.NewSession)
		users.AssertNotCalled(t, "CreateUser")
	})

	t.Run("no credentials provisions an anonymous principal", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("CreateUser", mock.MatchedBy(func(u *models.User) bool {
			return u.Anonymous && u.ID != ""
		})).Return(nil)
		sessions := session.NewStore()

		resolver := NewDynamic(users, sessions, "")

		principal, err := resolver.Resolve(context.Background(), Credentials{})
		require.NoError(t, err)
		assert.NotEmpty(t, principal.UserID)
		assert.NotEmpty(t, principal.SessionID)
		assert.True(t, principal.NewSession)

		// The freshly issued session resolves on the next call
		again, err := resolver.Resolve(context.Background(), Credentials{SessionID: principal.SessionID})
		require.NoError(t, err)
		assert.Equal(t, principal.UserID, again.UserID)
		assert.False(t, again.NewSession)

		users.AssertExpectations(t)
	})

	t.Run("stale session falls back to anonymous provisioning", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("CreateUser", mock.Anything).Return(nil)
		sessions := session.NewStore()

		resolver := NewDynamic(users, sessions, "")

		principal, err := resolver.Resolve(context.Background(), Credentials{SessionID: "expired-or-bogus"})
		require.NoError(t, err)
		assert.True(t, principal.NewSession)
		assert.NotEqual(t, "expired-or-bogus", principal.SessionID)
	})

	t.Run("provisioning failure propagates", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("CreateUser", mock.Anything).Return(errors.New("db closed"))
		sessions := session.NewStore()

		resolver := NewDynamic(users, sessions, "")

		_, err := resolver.Resolve(context.Background(), Credentials{})
		assert.Error(t, err)
	})

	t.Run("distinct anonymous principals per resolution", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("CreateUser", mock.Anything).Return(nil)
		sessions := session.NewStore()

		resolver := NewDynamic(users, sessions, "")

		first, err := resolver.Resolve(context.Background(), Credentials{})
		require.NoError(t, err)
		second, err := resolver.Resolve(context.Background(), Credentials{})
		require.NoError(t, err)

		assert.NotEqual(t, first.UserID, second.UserID)
	})
}
