package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"dating/internal/client/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	memberCalls atomic.Int32
	main        atomic.Value
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/account/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "pw1234" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": map[string]string{"code": "INVALID_CREDENTIALS", "message": "Invalid email or password"}})

			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
			"id": "acc-1", "displayName": "Alice", "email": body["email"], "token": "tok-1",
			"tokenExpiry": time.Now().Add(time.Hour),
		}})
	})
	mux.HandleFunc("GET /api/members", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": []map[string]any{
			{"id": "acc-1", "displayName": "Alice", "city": "Oslo", "country": "Norway"},
			{"id": "acc-2", "displayName": "Bob"},
		}})
	})
	mux.HandleFunc("GET /api/members/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.memberCalls.Add(1)
		if r.PathValue("id") != "acc-2" {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]string{"code": "MEMBER_NOT_FOUND", "message": "Member not found"}})

			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
			"id": "acc-2", "displayName": "Bob", "description": "Hi", "photos": []map[string]any{{"id": 7, "url": "http://blob/7.png", "isMain": true}},
		}})
	})
	mux.HandleFunc("GET /api/members/{id}/photos", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": []map[string]any{
			{"id": 1, "url": "http://blob/1.png", "isMain": true},
			{"id": 2, "url": "http://blob/2.png", "isMain": false},
		}})
	})
	mux.HandleFunc("PUT /api/members/set-main-photo/{photoId}", func(w http.ResponseWriter, r *http.Request) {
		f.main.Store(r.PathValue("photoId"))
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type cliFixture struct {
	api     *fakeAPI
	baseURL string
	session string
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()

	fake := &fakeAPI{}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	return &cliFixture{
		api:     fake,
		baseURL: srv.URL + "/api",
		session: filepath.Join(t.TempDir(), "session.json"),
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
	}
}

// run executes one datingctl invocation against the fake API, as a fresh process would.
func (f *cliFixture) run(stdin string, args ...string) error {
	f.stdout.Reset()
	f.stderr.Reset()

	full := append([]string{"-api", f.baseURL, "-session", f.session}, args...)

	return Run(context.Background(), full, Options{
		In:  strings.NewReader(stdin),
		Out: f.stdout,
		Err: f.stderr,
	})
}

func TestRun_Usage(t *testing.T) {
	f := newCLIFixture(t)

	assert.ErrorIs(t, f.run(""), ErrUsage)
	assert.ErrorIs(t, f.run("", "dance"), ErrUsage)
	assert.ErrorIs(t, f.run("", "member"), ErrUsage)
	assert.ErrorIs(t, f.run("", "set-main", "abc"), ErrUsage)
}

func TestRun_PublicMembersWithoutSession(t *testing.T) {
	f := newCLIFixture(t)

	require.NoError(t, f.run("", "members"))
	assert.Contains(t, f.stdout.String(), "acc-1\tAlice\tOslo, Norway")
	assert.Contains(t, f.stdout.String(), "acc-2\tBob")
}

func TestRun_ProtectedCommandsNeedSession(t *testing.T) {
	f := newCLIFixture(t)

	for _, args := range [][]string{{"member", "acc-2"}, {"whoami"}, {"set-main", "1"}, {"upload", "x.png"}} {
		err := f.run("", args...)
		assert.ErrorIs(t, err, guard.ErrDenied, args)
		assert.True(t, Reported(err))
		assert.Contains(t, f.stderr.String(), guard.DeniedMessage)
	}
	assert.Zero(t, f.api.memberCalls.Load(), "resolvers never run after a denial")
}

func TestRun_SessionSurvivesBetweenInvocations(t *testing.T) {
	f := newCLIFixture(t)

	require.NoError(t, f.run("pw1234\n", "login", "-email", "alice@x.com"))
	assert.Contains(t, f.stdout.String(), "Signed in as Alice")

	require.NoError(t, f.run("", "whoami"))
	assert.Contains(t, f.stdout.String(), "Alice (acc-1)")

	require.NoError(t, f.run("", "member", "acc-2"))
	assert.Contains(t, f.stdout.String(), "Bob (acc-2)")
	assert.Contains(t, f.stdout.String(), "* 7\thttp://blob/7.png")

	require.NoError(t, f.run("", "member", "ghost"))
	assert.Contains(t, f.stdout.String(), "No member ghost")

	require.NoError(t, f.run("", "logout"))
	assert.ErrorIs(t, f.run("", "whoami"), guard.ErrDenied)
}

func TestRun_LoginFailure(t *testing.T) {
	f := newCLIFixture(t)

	err := f.run("wrong\n", "login", "-email", "alice@x.com")
	require.Error(t, err)
	assert.True(t, Reported(err))
	assert.Contains(t, f.stderr.String(), "Unauthorized")

	assert.ErrorIs(t, f.run("", "whoami"), guard.ErrDenied)
}

func TestRun_SetMainMirrorsSession(t *testing.T) {
	f := newCLIFixture(t)
	require.NoError(t, f.run("pw1234\n", "login", "-email", "alice@x.com"))

	require.NoError(t, f.run("", "set-main", "2"))
	assert.Equal(t, "2", f.api.main.Load())
	assert.Contains(t, f.stdout.String(), "Main image is now http://blob/2.png")

	require.NoError(t, f.run("", "whoami"))
	assert.Contains(t, f.stdout.String(), "main image: http://blob/2.png")

	require.NoError(t, f.run("", "set-main", "99"))
	assert.Contains(t, f.stdout.String(), "No photo 99 in your gallery")
}
