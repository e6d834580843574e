package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qanyare/restaurant-service/internal/client"
	"github.com/qanyare/restaurant-service/internal/client/clienttest"
	"github.com/qanyare/restaurant-service/internal/fixtures"
	"github.com/qanyare/restaurant-service/internal/localstore"
	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/router"
)

type messages []string

func (m *messages) Notify(msg string) { *m = append(*m, msg) }

// failOnce fails the next write of key
type failOnce struct {
	localstore.Store
	key string
}

func (f *failOnce) Set(key string, v any) error {
	if key == f.key {
		f.key = ""
		return errors.New("disk full")
	}
	return f.Store.Set(key, v)
}

func setup(t *testing.T) (*client.Client, *localstore.Badger) {
	t.Helper()
	srv := clienttest.New(t, router.Options{})
	store, err := localstore.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return client.New(srv.URL, client.WithHTTPClient(srv.Client())), store
}

func TestSession_LoginAndRestore(t *testing.T) {
	api, store := setup(t)
	var msgs messages
	s := New(store, api, &msgs)
	assert.Nil(t, s.User())

	user, err := s.Login(context.Background(), fixtures.AdminUsername, fixtures.AdminPassword)
	require.NoError(t, err)
	assert.Equal(t, fixtures.AdminUsername, user.Username)
	assert.True(t, s.IsAdmin())
	assert.NotEmpty(t, s.Token())
	assert.Equal(t, messages{"Welcome, Admin User"}, msgs)

	restored := New(store, api, nil)
	require.NotNil(t, restored.User())
	assert.Equal(t, user.ID, restored.User().ID)
	assert.True(t, restored.IsAdmin())
	assert.Equal(t, s.Token(), restored.Token())
}

func TestSession_LoginFailure(t *testing.T) {
	api, store := setup(t)
	var msgs messages
	s := New(store, api, &msgs)

	_, err := s.Login(context.Background(), fixtures.AdminUsername, "nope")
	require.Error(t, err)
	assert.Nil(t, s.User())
	assert.False(t, s.IsAdmin())
	assert.Len(t, msgs, 1)

	found, err := store.Get(UserKey, &models.User{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSession_Logout(t *testing.T) {
	api, store := setup(t)
	s := New(store, api, nil)
	_, err := s.Login(context.Background(), fixtures.AdminUsername, fixtures.AdminPassword)
	require.NoError(t, err)

	require.NoError(t, s.Logout())
	assert.Nil(t, s.User())
	assert.False(t, s.IsAdmin())
	assert.Empty(t, s.Token())

	restored := New(store, api, nil)
	assert.Nil(t, restored.User())
	assert.False(t, restored.IsAdmin())
}

func TestSession_RegularUserIsNotAdmin(t *testing.T) {
	api, store := setup(t)
	_, err := api.Register(context.Background(), models.RegisterRequest{Username: "guest", Password: "guest123", Name: "Guest"})
	require.NoError(t, err)

	s := New(store, api, nil)
	_, err = s.Login(context.Background(), "guest", "guest123")
	require.NoError(t, err)
	assert.False(t, s.IsAdmin())

	var admin bool
	found, err := store.Get(AdminKey, &admin)
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, admin)
}

func TestSession_UnreadableSlot(t *testing.T) {
	_, store := setup(t)
	// a number cannot decode into a user
	require.NoError(t, store.Set(UserKey, 42))
	s := New(store, nil, nil)
	assert.Nil(t, s.User())
}

func TestSession_FailedSaveRestoresSlots(t *testing.T) {
	api, store := setup(t)
	_, err := api.Register(context.Background(), models.RegisterRequest{Username: "guest", Password: "guest123", Name: "Guest"})
	require.NoError(t, err)

	flaky := &failOnce{Store: store, key: TokenKey}
	s := New(flaky, api, nil)
	_, err = s.Login(context.Background(), "guest", "guest123")
	require.Error(t, err)
	assert.Nil(t, s.User())

	found, err := store.Get(UserKey, &models.User{})
	require.NoError(t, err)
	assert.False(t, found)
	found, err = store.Get(AdminKey, new(bool))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSession_FailedSaveKeepsPreviousUser(t *testing.T) {
	api, store := setup(t)
	_, err := api.Register(context.Background(), models.RegisterRequest{Username: "guest", Password: "guest123", Name: "Guest"})
	require.NoError(t, err)

	flaky := &failOnce{Store: store}
	s := New(flaky, api, nil)
	admin, err := s.Login(context.Background(), fixtures.AdminUsername, fixtures.AdminPassword)
	require.NoError(t, err)
	token := s.Token()

	flaky.key = TokenKey
	_, err = s.Login(context.Background(), "guest", "guest123")
	require.Error(t, err)
	assert.Equal(t, admin.ID, s.User().ID)

	restored := New(store, api, nil)
	require.NotNil(t, restored.User())
	assert.Equal(t, admin.ID, restored.User().ID)
	assert.True(t, restored.IsAdmin())
	assert.Equal(t, token, restored.Token())
}
