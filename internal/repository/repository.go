package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"auction-gateway/internal/auctionerrors"
	model "auction-gateway/internal/models"
)

// Keys of the three persisted session fields
const (
	KeyAccessToken = "accessToken"
	KeyAPIKey      = "apiKey"
	KeyUser        = "user"
)

// SessionDB persists the client session. Save and Clear change all three
// fields as a unit and are durable when they return.
type SessionDB interface {
	Load(ctx context.Context) (model.Session, error)
	Save(ctx context.Context, session model.Session) error
	Clear(ctx context.Context) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of SessionDB
type MemoryRepo struct {
	mu     sync.RWMutex
	fields map[string]string // key: field name -> value: raw stored string
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		fields: make(map[string]string),
	}
}

// Load returns the stored session, empty when nothing is stored
func (r *MemoryRepo) Load(ctx context.Context) (model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return decodeFields(r.fields)
}

// Save replaces all three fields
func (r *MemoryRepo) Save(ctx context.Context, session model.Session) error {
	fields, err := encodeFields(session)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.fields = fields
	return nil
}

// Clear removes all three fields
func (r *MemoryRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fields = make(map[string]string)
	return nil
}

// SetField writes one raw field. This method is intended for tests only.
func (r *MemoryRepo) SetField(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fields[key] = value
}

// encodeFields flattens a session into its string-keyed fields; empty fields are omitted
func encodeFields(session model.Session) (map[string]string, error) {
	fields := make(map[string]string, 3)
	if session.AccessToken != "" {
		fields[KeyAccessToken] = session.AccessToken
	}
	if session.APIKey != "" {
		fields[KeyAPIKey] = session.APIKey
	}
	if session.User != nil {
		raw, err := json.Marshal(session.User)
		if err != nil {
			return nil, fmt.Errorf("encode cached user: %w", err)
		}
		fields[KeyUser] = string(raw)
	}
	return fields, nil
}

func decodeFields(fields map[string]string) (model.Session, error) {
	session := model.Session{
		AccessToken: fields[KeyAccessToken],
		APIKey:      fields[KeyAPIKey],
	}
	if raw, ok := fields[KeyUser]; ok && raw != "" {
		var user model.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return session, fmt.Errorf("decode cached user: %w: %v", auctionerrors.ErrInvalidSession, err)
		}
		session.User = &user
	}
	return session, nil
}
