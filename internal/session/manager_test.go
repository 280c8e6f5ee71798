package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"auction-gateway/internal/apiclient"
	"auction-gateway/internal/auctionerrors"
	model "auction-gateway/internal/models"
	"auction-gateway/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// fakeUpstream serves canned responses per path and records request headers
type fakeUpstream struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	headers   map[string][]http.Header
}

type fakeResponse struct {
	status int
	body   any
}

func newFakeUpstream(t *testing.T) (*fakeUpstream, *httptest.Server) {
	t.Helper()
	f := &fakeUpstream{
		responses: make(map[string]fakeResponse),
		headers:   make(map[string][]http.Header),
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		resp, ok := f.responses[r.URL.Path]
		f.headers[r.URL.Path] = append(f.headers[r.URL.Path], r.Header.Clone())
		f.mu.Unlock()

		if !ok {
			resp = fakeResponse{status: http.StatusNotFound, body: map[string]any{
				"errors": []map[string]string{{"message": "Route not found"}},
			}}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.status)
		_ = json.NewEncoder(w).Encode(resp.body)
	}))
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeUpstream) set(path string, status int, body any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = fakeResponse{status: status, body: body}
}

func (f *fakeUpstream) requests(path string) []http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]http.Header(nil), f.headers[path]...)
}

func data(v any) map[string]any {
	return map[string]any{"data": v, "meta": map[string]any{}}
}

func upstreamError(msg string) map[string]any {
	return map[string]any{"errors": []map[string]string{{"message": msg}}, "status": "Error"}
}

// newTestManager wires a manager to the fake upstream the way main does
func newTestManager(t *testing.T, store repository.SessionDB, baseURL string, opts ...Option) *Manager {
	t.Helper()
	client := apiclient.New(apiclient.Config{BaseURL: baseURL, Timeout: 5 * time.Second}, nil)
	m := NewManager(store, client, opts...)
	client.SetCredentials(m)
	return m
}

func signedToken(t *testing.T, name string, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": name,
		"exp":  exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func happyUpstream(f *fakeUpstream, token string) {
	f.set("/auth/login", http.StatusOK, data(map[string]any{
		"name": "alice", "email": "alice@stud.noroff.no", "accessToken": token,
	}))
	f.set("/auth/create-api-key", http.StatusCreated, data(map[string]any{
		"name": "auction-gateway", "status": "ACTIVE", "key": "key-1",
	}))
	f.set("/auction/profiles/alice", http.StatusOK, data(map[string]any{
		"name": "alice", "email": "alice@stud.noroff.no", "credits": 1500, "bio": "collector",
	}))
}

// Test login followed by a state read returns what upstream returned
func TestManager_LoginRoundTrip(t *testing.T) {
	t.Parallel()

	f, srv := newFakeUpstream(t)
	happyUpstream(f, "token-alice")
	store := repository.NewMemoryRepo()
	m := newTestManager(t, store, srv.URL)
	ctx := context.Background()

	user, err := m.Login(ctx, model.LoginCredentials{Email: "alice@stud.noroff.no", Password: "secret123"})
	require.NoError(t, err)
	require.Equal(t, "alice", user.Name)

	snap := m.Snapshot()
	require.Equal(t, StateAuthenticatedWithKey.String(), snap.State)
	require.True(t, snap.Authenticated)
	require.Equal(t, "token-alice", snap.AccessToken)
	require.Equal(t, "key-1", snap.APIKey)
	require.NotNil(t, snap.User)
	require.Equal(t, "alice", snap.User.Name)
	require.Equal(t, 1500, snap.User.Credits)
	require.Equal(t, "collector", snap.User.Bio)

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "token-alice", persisted.AccessToken)
	require.Equal(t, "key-1", persisted.APIKey)
	require.Equal(t, 1500, persisted.User.Credits)

	keyReqs := f.requests("/auth/create-api-key")
	require.Len(t, keyReqs, 1)
	require.Equal(t, "Bearer token-alice", keyReqs[0].Get("Authorization"))

	profileReqs := f.requests("/auction/profiles/alice")
	require.Len(t, profileReqs, 1)
	require.Equal(t, "key-1", profileReqs[0].Get(apiclient.APIKeyHeader))
}

// Test logout followed by a state read yields nothing
func TestManager_Logout(t *testing.T) {
	t.Parallel()

	f, srv := newFakeUpstream(t)
	happyUpstream(f, "token-alice")
	store := repository.NewMemoryRepo()
	m := newTestManager(t, store, srv.URL)
	ctx := context.Background()

	_, err := m.Login(ctx, model.LoginCredentials{Email: "alice@stud.noroff.no", Password: "secret123"})
	require.NoError(t, err)
	require.NoError(t, m.Logout(ctx))

	snap := m.Snapshot()
	require.Equal(t, StateAnonymous.String(), snap.State)
	require.False(t, snap.Authenticated)
	require.Empty(t, snap.AccessToken)
	require.Empty(t, snap.APIKey)
	require.Nil(t, snap.User)

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, persisted.Empty())

	// logging out while anonymous is harmless
	require.NoError(t, m.Logout(ctx))
}

// Test login failures propagate the normalized upstream error
func TestManager_LoginFailure(t *testing.T) {
	t.Parallel()

	f, srv := newFakeUpstream(t)
	f.set("/auth/login", http.StatusUnauthorized, upstreamError("Invalid email or password"))
	store := repository.NewMemoryRepo()
	m := newTestManager(t, store, srv.URL)
	ctx := context.Background()

	_, err := m.Login(ctx, model.LoginCredentials{Email: "alice@stud.noroff.no", Password: "wrong"})
	require.Error(t, err)

	apiErr, ok := auctionerrors.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "Invalid email or password", apiErr.Message())

	require.Equal(t, StateAnonymous, m.State())
	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, persisted.Empty())
	require.Empty(t, f.requests("/auth/create-api-key"))
}

// Test a failing API key creation leaves the session in degraded mode
func TestManager_LoginWithoutAPIKey(t *testing.T) {
	t.Parallel()

	f, srv := newFakeUpstream(t)
	happyUpstream(f, "token-alice")
	f.set("/auth/create-api-key", http.StatusInternalServerError, upstreamError("boom"))
	f.set("/auction/profiles/alice", http.StatusForbidden, upstreamError("Missing API key"))
	m := newTestManager(t, repository.NewMemoryRepo(), srv.URL)

	user, err := m.Login(context.Background(), model.LoginCredentials{Email: "alice@stud.noroff.no", Password: "secret123"})
	require.NoError(t, err)
	require.Equal(t, "alice", user.Name)

	snap := m.Snapshot()
	require.Equal(t, StateAuthenticatedNoKey.String(), snap.State)
	require.False(t, snap.HasAPIKey)
	require.Equal(t, DefaultCredits, snap.User.Credits)
}

// Test a 403 on refresh keeps previously known credits
func TestManager_RefreshProfileKeepsKnownCredits(t *testing.T) {
	t.Parallel()

	f, srv := newFakeUpstream(t)
	happyUpstream(f, "token-alice")
	m := newTestManager(t, repository.NewMemoryRepo(), srv.URL)
	ctx := context.Background()

	_, err := m.Login(ctx, model.LoginCredentials{Email: "alice@stud.noroff.no", Password: "secret123"})
	require.NoError(t, err)
	require.Equal(t, 1500, m.CurrentUser().Credits)

	f.set("/auction/profiles/alice", http.StatusForbidden, upstreamError("Forbidden"))
	m.RefreshProfile(ctx)
	require.Equal(t, 1500, m.CurrentUser().Credits)

	m.UpdateCredits(1200)
	m.RefreshProfile(ctx)
	require.Equal(t, 1200, m.CurrentUser().Credits)
}

// Test login without a token in the response
func TestManager_LoginMissingToken(t *testing.T) {
	t.Parallel()

	f, srv := newFakeUpstream(t)
	f.set("/auth/login", http.StatusOK, data(map[string]any{"name": "alice", "email": "alice@stud.noroff.no"}))
	m := newTestManager(t, repository.NewMemoryRepo(), srv.URL)

	_, err := m.Login(context.Background(), model.LoginCredentials{Email: "alice@stud.noroff.no", Password: "secret123"})
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrMissingAccessToken))
	require.Equal(t, StateAnonymous, m.State())
}

// Test register with and without a token in the response
func TestManager_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      map[string]any
		wantState State
	}{
		{
			name:      "created_without_token",
			body:      map[string]any{"name": "bob", "email": "bob@stud.noroff.no"},
			wantState: StateAnonymous,
		},
		{
			name:      "created_with_token",
			body:      map[string]any{"name": "bob", "email": "bob@stud.noroff.no", "accessToken": "token-bob"},
			wantState: StateAuthenticatedWithKey,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f, srv := newFakeUpstream(t)
			f.set("/auth/register", http.StatusCreated, data(tc.body))
			f.set("/auth/create-api-key", http.StatusCreated, data(map[string]any{"key": "key-bob"}))
			f.set("/auction/profiles/bob", http.StatusOK, data(map[string]any{"name": "bob", "credits": 1000}))
			m := newTestManager(t, repository.NewMemoryRepo(), srv.URL)

			user, err := m.Register(context.Background(), model.RegisterData{
				Name: "bob", Email: "bob@stud.noroff.no", Password: "secret123",
			})
			require.NoError(t, err)
			require.Equal(t, "bob", user.Name)
			require.Equal(t, tc.wantState, m.State())
		})
	}
}

// Test a second login replaces the whole previous session
func TestManager_LoginReplacesSession(t *testing.T) {
	t.Parallel()

	f, srv := newFakeUpstream(t)
	happyUpstream(f, "token-alice")
	m := newTestManager(t, repository.NewMemoryRepo(), srv.URL)
	ctx := context.Background()

	_, err := m.Login(ctx, model.LoginCredentials{Email: "alice@stud.noroff.no", Password: "secret123"})
	require.NoError(t, err)

	f.set("/auth/create-api-key", http.StatusInternalServerError, upstreamError("boom"))
	f.set("/auth/login", http.StatusOK, data(map[string]any{"name": "carol", "email": "carol@stud.noroff.no", "accessToken": "token-carol"}))
	f.set("/auction/profiles/carol", http.StatusOK, data(map[string]any{"name": "carol", "credits": 700}))

	_, err = m.Login(ctx, model.LoginCredentials{Email: "carol@stud.noroff.no", Password: "secret123"})
	require.NoError(t, err)

	snap := m.Snapshot()
	require.Equal(t, "token-carol", snap.AccessToken)
	require.Empty(t, snap.APIKey, "previous user's key must not survive")
	require.Equal(t, "carol", snap.User.Name)
}

// Test a failing store aborts the login
func TestManager_LoginStoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, srv := newFakeUpstream(t)
	happyUpstream(f, "token-alice")

	store := repository.NewMockSessionDB(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	m := newTestManager(t, store, srv.URL)

	_, err := m.Login(context.Background(), model.LoginCredentials{Email: "alice@stud.noroff.no", Password: "secret123"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
	require.Equal(t, StateAnonymous, m.State())
	require.Empty(t, m.AccessToken())
}

// Test startup reconciliation of persisted sessions
func TestManager_Init(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	alice := &model.User{Name: "alice", Email: "alice@stud.noroff.no", Credits: 900}

	tests := []struct {
		name        string
		stored      model.Session
		rawUser     string
		wantState   State
		wantCleared bool
		wantCredits int
	}{
		{
			name:      "nothing_stored",
			stored:    model.Session{},
			wantState: StateAnonymous,
		},
		{
			name:        "user_without_token",
			stored:      model.Session{User: alice},
			wantState:   StateAnonymous,
			wantCleared: true,
		},
		{
			name:        "token_without_user",
			stored:      model.Session{AccessToken: "opaque-token", APIKey: "key"},
			wantState:   StateAnonymous,
			wantCleared: true,
		},
		{
			name:        "key_without_token",
			stored:      model.Session{APIKey: "key"},
			wantState:   StateAnonymous,
			wantCleared: true,
		},
		{
			name:        "expired_token",
			stored:      model.Session{AccessToken: signedToken(t, "alice", now.Add(-time.Hour)), User: alice},
			wantState:   StateAnonymous,
			wantCleared: true,
		},
		{
			name:        "token_of_other_user",
			stored:      model.Session{AccessToken: signedToken(t, "mallory", now.Add(time.Hour)), User: alice},
			wantState:   StateAnonymous,
			wantCleared: true,
		},
		{
			name:        "corrupted_user",
			stored:      model.Session{AccessToken: "opaque-token"},
			rawUser:     "{broken",
			wantState:   StateAnonymous,
			wantCleared: true,
		},
		{
			name:        "valid_with_key",
			stored:      model.Session{AccessToken: signedToken(t, "alice", now.Add(time.Hour)), APIKey: "key-1", User: alice},
			wantState:   StateAuthenticatedWithKey,
			wantCredits: 1500,
		},
		{
			name:        "valid_opaque_token_without_key",
			stored:      model.Session{AccessToken: "opaque-token", User: alice},
			wantState:   StateAuthenticatedWithKey,
			wantCredits: 1500,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f, srv := newFakeUpstream(t)
			happyUpstream(f, "unused")
			store := repository.NewMemoryRepo()
			ctx := context.Background()
			require.NoError(t, store.Save(ctx, tc.stored))
			if tc.rawUser != "" {
				store.SetField(repository.KeyUser, tc.rawUser)
			}

			m := newTestManager(t, store, srv.URL, WithClock(func() time.Time { return now }))
			require.NoError(t, m.Init(ctx))
			require.Equal(t, tc.wantState, m.State())

			persisted, err := store.Load(ctx)
			require.NoError(t, err)
			if tc.wantCleared {
				require.True(t, persisted.Empty())
				require.Nil(t, m.CurrentUser())
			}
			if tc.wantState.Authenticated() {
				require.Equal(t, tc.wantCredits, m.CurrentUser().Credits)
				require.NotEmpty(t, persisted.APIKey)
			}
		})
	}
}

// Test the transition table
func TestNextState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from    State
		event   Event
		want    State
		wantErr bool
	}{
		{StateAnonymous, EventLoginStarted, StateAuthenticating, false},
		{StateAnonymous, EventSessionRestored, StateAuthenticatedNoKey, false},
		{StateAnonymous, EventKeyCreated, StateAnonymous, true},
		{StateAnonymous, EventAuthSucceeded, StateAnonymous, true},
		{StateAuthenticating, EventAuthSucceeded, StateAuthenticatedNoKey, false},
		{StateAuthenticating, EventAuthFailed, StateAnonymous, false},
		{StateAuthenticating, EventKeyCreated, StateAuthenticating, true},
		{StateAuthenticatedNoKey, EventKeyCreated, StateAuthenticatedWithKey, false},
		{StateAuthenticatedNoKey, EventLoginStarted, StateAuthenticatedNoKey, true},
		{StateAuthenticatedWithKey, EventKeyCreated, StateAuthenticatedWithKey, false},
		{StateAuthenticatedWithKey, EventLoggedOut, StateAnonymous, false},
		{StateAuthenticating, EventLoggedOut, StateAnonymous, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.from.String()+"_"+tc.event.String(), func(t *testing.T) {
			t.Parallel()

			got, err := next(tc.from, tc.event)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, auctionerrors.ErrIllegalTransition))
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.want, got)
		})
	}
}
