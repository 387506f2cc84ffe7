package session

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dating/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func aliceSession() *Session {
	return &Session{AccountID: "acc-1", DisplayName: "Alice", Token: "tok", TokenExpiry: time.Now().Add(time.Hour)}
}

func TestStore_SetCurrentUserMirrorsBeforeReturning(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage, discardLogger())

	require.NoError(t, store.SetCurrentUser(aliceSession()))

	// A "reload": a fresh store over the same storage sees the login immediately.
	reloaded := NewStore(storage, discardLogger())
	require.NoError(t, reloaded.Rehydrate(context.Background()))
	require.NotNil(t, reloaded.Current())
	assert.Equal(t, "acc-1", reloaded.Current().AccountID)

	require.NoError(t, store.Logout())
	assert.Nil(t, store.Current())

	_, err := storage.Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)

	reloaded = NewStore(storage, discardLogger())
	require.NoError(t, reloaded.Rehydrate(context.Background()))
	assert.Nil(t, reloaded.Current())
}

func TestStore_CurrentReturnsCopy(t *testing.T) {
	store := NewStore(NewMemoryStorage(), discardLogger())
	url := "http://x/a.png"
	session := aliceSession()
	session.MainImageURL = &url
	require.NoError(t, store.SetCurrentUser(session))

	got := store.Current()
	*got.MainImageURL = "tampered"
	got.DisplayName = "Mallory"

	assert.Equal(t, "http://x/a.png", *store.Current().MainImageURL)
	assert.Equal(t, "Alice", store.Current().DisplayName)
}

func TestStore_RejectsInvalidSession(t *testing.T) {
	store := NewStore(NewMemoryStorage(), discardLogger())

	assert.Error(t, store.SetCurrentUser(&Session{AccountID: "acc-1"}))
	assert.Nil(t, store.Current())
}

func TestStore_RehydrateMalformedIsNoSession(t *testing.T) {
	for name, payload := range map[string]string{
		"not json":      "{oops",
		"missing token": `{"accountId":"acc-1"}`,
		"expired":       `{"accountId":"acc-1","token":"tok","tokenExpiry":"2001-01-01T00:00:00Z"}`,
	} {
		t.Run(name, func(t *testing.T) {
			storage := NewMemoryStorage()
			require.NoError(t, storage.Save([]byte(payload)))
			store := NewStore(storage, discardLogger())

			require.NoError(t, store.Rehydrate(context.Background()))
			assert.Nil(t, store.Current())
			assert.NoError(t, store.Wait(context.Background()))
		})
	}
}

type failingStorage struct{ MemoryStorage }

func (f *failingStorage) Load() ([]byte, error) { return nil, errors.New("disk on fire") }

func TestStore_RehydrateStorageErrorStillReleasesBarrier(t *testing.T) {
	store := NewStore(&failingStorage{}, discardLogger())

	assert.Error(t, store.Rehydrate(context.Background()))
	assert.NoError(t, store.Wait(context.Background()))
	assert.Nil(t, store.Current())
}

func TestStore_WaitBlocksUntilRehydrated(t *testing.T) {
	store := NewStore(NewMemoryStorage(), discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, store.Wait(ctx), context.DeadlineExceeded)

	done := make(chan error, 1)
	go func() { done <- store.Wait(context.Background()) }()
	require.NoError(t, store.Rehydrate(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Rehydrate")
	}
}

func TestStore_ExpiryHidesSession(t *testing.T) {
	store := NewStore(NewMemoryStorage(), discardLogger())
	now := time.Now()
	store.now = func() time.Time { return now }
	require.NoError(t, store.SetCurrentUser(aliceSession()))
	require.NotNil(t, store.Current())

	store.now = func() time.Time { return now.Add(2 * time.Hour) }
	assert.Nil(t, store.Current())
}

func TestStore_MirrorUpdatesAndSubscribers(t *testing.T) {
	store := NewStore(NewMemoryStorage(), discardLogger())

	var seen []*Session
	cancel := store.Subscribe(func(s *Session) { seen = append(seen, s) })

	// No identity: mirrors are ignored.
	require.NoError(t, store.UpdateMainImage("acc-1", nil))
	assert.Empty(t, seen)

	require.NoError(t, store.SetCurrentUser(aliceSession()))
	url := "http://x/b.png"
	require.NoError(t, store.UpdateMainImage("acc-1", &url))
	require.NoError(t, store.UpdateDisplayName("acc-1", "Ally"))

	current := store.Current()
	assert.Equal(t, url, *current.MainImageURL)
	assert.Equal(t, "Ally", current.DisplayName)

	cancel()
	require.NoError(t, store.Logout())

	require.Len(t, seen, 3)
	assert.Nil(t, seen[0].MainImageURL)
	assert.Equal(t, url, *seen[1].MainImageURL)
}

func TestStore_MirrorIgnoresOtherAccount(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage, discardLogger())
	require.NoError(t, store.SetCurrentUser(aliceSession()))
	require.NoError(t, store.Logout())

	bob := &Session{AccountID: "acc-2", DisplayName: "Bob", Token: "tok-2", TokenExpiry: time.Now().Add(time.Hour)}
	require.NoError(t, store.SetCurrentUser(bob))

	url := "http://x/alice.png"
	require.NoError(t, store.UpdateMainImage("acc-1", &url))
	require.NoError(t, store.UpdateDisplayName("acc-1", "Ally"))

	current := store.Current()
	require.NotNil(t, current)
	assert.Equal(t, "acc-2", current.AccountID)
	assert.Nil(t, current.MainImageURL)
	assert.Equal(t, "Bob", current.DisplayName)

	reloaded := NewStore(storage, discardLogger())
	require.NoError(t, reloaded.Rehydrate(context.Background()))
	require.NotNil(t, reloaded.Current())
	assert.Nil(t, reloaded.Current().MainImageURL)
}

func TestStore_MirrorAfterLogoutDoesNotRestoreSession(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage, discardLogger())
	require.NoError(t, store.SetCurrentUser(aliceSession()))
	require.NoError(t, store.Logout())

	url := "http://x/alice.png"
	require.NoError(t, store.UpdateMainImage("acc-1", &url))

	assert.Nil(t, store.Current())
	_, err := storage.Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	storage := NewFileStorage(path)

	_, err := storage.Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)

	require.NoError(t, storage.Save([]byte(`{"a":1}`)))
	require.NoError(t, storage.Save([]byte(`{"a":2}`)))

	data, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")

	require.NoError(t, storage.Remove())
	require.NoError(t, storage.Remove())
	_, err = storage.Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}
