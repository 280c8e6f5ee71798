package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"auction-gateway/internal/apiclient"
	"auction-gateway/internal/auctionerrors"
	model "auction-gateway/internal/models"
	"auction-gateway/internal/repository"
	"auction-gateway/utils"
)

// DefaultCredits stands in for the balance when upstream cannot provide it
const DefaultCredits = 1000

// DefaultKeyName labels API keys created by the gateway
const DefaultKeyName = "auction-gateway"

// Snapshot is a consistent read of the session
type Snapshot struct {
	State         string      `json:"state"`
	Authenticated bool        `json:"authenticated"`
	HasAPIKey     bool        `json:"hasApiKey"`
	User          *model.User `json:"user,omitempty"`
	AccessToken   string      `json:"-"`
	APIKey        string      `json:"-"`
}

// Option configures a Manager
type Option func(*Manager)

// WithClock overrides the wall clock used for token expiry checks
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithKeyName overrides the name given to provisioned API keys
func WithKeyName(name string) Option {
	return func(m *Manager) { m.keyName = name }
}

// Manager owns the persisted session and its state machine.
// opMu serializes session operations; mu guards the fields and is never held
// across a network call, since the API client reads credentials through it.
type Manager struct {
	opMu sync.Mutex

	mu      sync.RWMutex
	state   State
	session model.Session
	user    *model.User

	store   repository.SessionDB
	api     apiclient.Requester
	now     func() time.Time
	keyName string
}

// NewManager creates a manager in the anonymous state. Call Init before use.
func NewManager(store repository.SessionDB, api apiclient.Requester, opts ...Option) *Manager {
	m := &Manager{
		state:   StateAnonymous,
		store:   store,
		api:     api,
		now:     time.Now,
		keyName: DefaultKeyName,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init reconciles the persisted session at process start. Partial or stale
// sessions are cleared rather than trusted.
func (m *Manager) Init(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	stored, err := m.store.Load(ctx)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrInvalidSession) {
			utils.Warn("session: cached user unreadable, clearing session", map[string]any{"error": err.Error()})
			return m.clear(ctx)
		}
		return fmt.Errorf("session: load persisted session: %w", err)
	}

	if reason := invalidReason(stored, m.now()); reason != "" {
		utils.Warn("session: invalid persisted session, forcing logout", map[string]any{"reason": reason})
		return m.clear(ctx)
	}
	if stored.Empty() {
		return nil
	}

	m.mu.Lock()
	m.session = stored
	user := *stored.User
	m.user = &user
	m.mu.Unlock()

	if err := m.apply(EventSessionRestored); err != nil {
		return err
	}
	if stored.APIKey != "" {
		if err := m.apply(EventKeyCreated); err != nil {
			return err
		}
	} else if err := m.provisionAPIKey(ctx); err != nil {
		utils.Warn("session: failed to create API key on startup", map[string]any{"error": err.Error()})
	}

	m.refreshProfile(ctx)
	utils.Info("session: restored", map[string]any{"user": user.Name, "state": m.State().String()})
	return nil
}

func invalidReason(s model.Session, now time.Time) string {
	switch {
	case s.Empty():
		return ""
	case s.AccessToken == "" && s.User != nil:
		return "user found but no token"
	case s.AccessToken == "":
		return "api key without token"
	case s.User == nil:
		return "token without cached user"
	case tokenExpired(s.AccessToken, now):
		return "access token expired"
	}
	if name := tokenName(s.AccessToken); name != "" && name != s.User.Name {
		return "token belongs to another user"
	}
	return ""
}

// Login authenticates with upstream, persists the token and user snapshot,
// then provisions an API key and refreshes the profile on a best-effort basis.
func (m *Manager) Login(ctx context.Context, creds model.LoginCredentials) (model.AuthUser, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	user, err := m.authenticate(ctx, "/auth/login", creds)
	if err != nil {
		utils.Error("session: login failed", map[string]any{"email": creds.Email, "error": err.Error()})
		return user, err
	}
	if user.AccessToken == "" {
		return user, fmt.Errorf("session: login: %w", auctionerrors.ErrMissingAccessToken)
	}
	return user, nil
}

// Register creates the account. When upstream answers without a token the
// account exists but the manager stays anonymous.
func (m *Manager) Register(ctx context.Context, data model.RegisterData) (model.AuthUser, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	user, err := m.authenticate(ctx, "/auth/register", data)
	if err != nil {
		utils.Error("session: registration failed", map[string]any{"name": data.Name, "error": err.Error()})
		return user, err
	}
	return user, nil
}

func (m *Manager) authenticate(ctx context.Context, path string, payload any) (model.AuthUser, error) {
	if m.State() != StateAnonymous {
		if err := m.clear(ctx); err != nil {
			return model.AuthUser{}, err
		}
	}
	if err := m.apply(EventLoginStarted); err != nil {
		return model.AuthUser{}, err
	}

	var resp model.Envelope[model.AuthUser]
	if err := m.api.Do(ctx, apiclient.Request{Method: http.MethodPost, Path: path, Body: payload}, &resp); err != nil {
		m.fail()
		return model.AuthUser{}, err
	}

	authUser := resp.Data
	if authUser.AccessToken == "" {
		m.fail()
		return authUser, nil
	}

	user := model.UserFromAuth(authUser)
	persisted := model.Session{AccessToken: authUser.AccessToken, User: &user}
	if err := m.store.Save(ctx, persisted); err != nil {
		m.fail()
		return model.AuthUser{}, fmt.Errorf("session: persist session: %w", err)
	}

	m.mu.Lock()
	m.session = persisted
	cached := user
	m.user = &cached
	m.mu.Unlock()

	if err := m.apply(EventAuthSucceeded); err != nil {
		return model.AuthUser{}, err
	}

	if err := m.provisionAPIKey(ctx); err != nil {
		utils.Warn("session: failed to create API key", map[string]any{"user": user.Name, "error": err.Error()})
	}
	m.refreshProfile(ctx)

	utils.Info("session: authenticated", map[string]any{"user": user.Name, "state": m.State().String()})
	return authUser, nil
}

func (m *Manager) fail() {
	if err := m.apply(EventAuthFailed); err != nil {
		utils.Error("session: unexpected state after failed authentication", map[string]any{"error": err.Error()})
	}
}

// EnsureAPIKey provisions a key only when the session has none
func (m *Manager) EnsureAPIKey(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if m.APIKey() != "" {
		return nil
	}
	return m.provisionAPIKey(ctx)
}

// CreateAPIKey provisions a fresh key and refreshes the profile with it
func (m *Manager) CreateAPIKey(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if err := m.provisionAPIKey(ctx); err != nil {
		utils.Error("session: failed to create API key", map[string]any{"error": err.Error()})
		return err
	}
	m.refreshProfile(ctx)
	return nil
}

func (m *Manager) provisionAPIKey(ctx context.Context) error {
	token := m.AccessToken()
	if token == "" {
		return fmt.Errorf("session: create api key: %w", auctionerrors.ErrNotAuthenticated)
	}

	var resp model.Envelope[model.APIKey]
	req := apiclient.Request{
		Method: http.MethodPost,
		Path:   "/auth/create-api-key",
		Body:   map[string]string{"name": m.keyName},
		Token:  token,
	}
	if err := m.api.Do(ctx, req, &resp); err != nil {
		return fmt.Errorf("session: create api key: %w", err)
	}
	if resp.Data.Key == "" {
		return errors.New("session: create api key: response carried no key")
	}

	m.mu.Lock()
	updated := m.session
	updated.APIKey = resp.Data.Key
	m.mu.Unlock()

	if err := m.store.Save(ctx, updated); err != nil {
		return fmt.Errorf("session: persist api key: %w", err)
	}

	m.mu.Lock()
	m.session = updated
	m.mu.Unlock()
	return m.apply(EventKeyCreated)
}

// RefreshProfile pulls credits and profile fields for the cached user.
// Failures are logged and masked behind the last known or default credits.
func (m *Manager) RefreshProfile(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.refreshProfile(ctx)
}

func (m *Manager) refreshProfile(ctx context.Context) {
	user := m.CurrentUser()
	if user == nil || m.AccessToken() == "" {
		utils.Warn("session: no auth token available, skipping profile fetch", nil)
		return
	}

	var resp model.Envelope[model.Profile]
	req := apiclient.Request{Method: http.MethodGet, Path: "/auction/profiles/" + url.PathEscape(user.Name)}
	if err := m.api.Do(ctx, req, &resp); err != nil {
		if auctionerrors.IsForbidden(err) {
			utils.Warn("session: profile API access forbidden, likely a missing or invalid API key; continuing with default credits", map[string]any{"user": user.Name})
		} else {
			utils.Warn("session: failed to fetch updated profile data", map[string]any{"user": user.Name, "error": err.Error()})
		}
		m.mu.Lock()
		if m.user != nil && m.user.Credits == 0 {
			m.user.Credits = DefaultCredits
		}
		m.mu.Unlock()
		return
	}

	profile := resp.Data
	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		return
	}
	m.user.Credits = profile.Credits
	m.user.Bio = profile.Bio
	m.user.Avatar = profile.Avatar
	m.user.Banner = profile.Banner
	snapshot := *m.user
	updated := m.session
	updated.User = &snapshot
	m.session = updated
	m.mu.Unlock()

	if err := m.store.Save(ctx, updated); err != nil {
		utils.Warn("session: failed to persist refreshed profile", map[string]any{"user": user.Name, "error": err.Error()})
	}
}

// UpdateCredits overwrites the cached balance, e.g. after a bid
func (m *Manager) UpdateCredits(credits int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user != nil {
		m.user.Credits = credits
	}
}

// Logout clears the three persisted fields unconditionally
func (m *Manager) Logout(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	return m.clear(ctx)
}

// clear resets memory first so a failing store still leaves the process anonymous
func (m *Manager) clear(ctx context.Context) error {
	m.mu.Lock()
	m.session = model.Session{}
	m.user = nil
	m.mu.Unlock()

	if err := m.apply(EventLoggedOut); err != nil {
		return err
	}
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("session: clear persisted session: %w", err)
	}
	return nil
}

func (m *Manager) apply(e Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	to, err := next(m.state, e)
	if err != nil {
		return err
	}
	utils.Debug("session: transition", map[string]any{
		"from":  m.state.String(),
		"event": e.String(),
		"to":    to.String(),
	})
	m.state = to
	return nil
}

// State returns the current state
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// AccessToken implements apiclient.CredentialSource
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.AccessToken
}

// APIKey implements apiclient.CredentialSource
func (m *Manager) APIKey() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.APIKey
}

// CurrentUser returns a copy of the cached user, nil when anonymous
func (m *Manager) CurrentUser() *model.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// Snapshot returns a consistent view of the session
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{
		State:         m.state.String(),
		Authenticated: m.state.Authenticated(),
		HasAPIKey:     m.session.APIKey != "",
		AccessToken:   m.session.AccessToken,
		APIKey:        m.session.APIKey,
	}
	if m.user != nil {
		user := *m.user
		snap.User = &user
	}
	return snap
}
