package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/lightgallery/internal/client/models"
	"github.com/dmitrijs2005/lightgallery/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/lightgallery/internal/common"
	"github.com/dmitrijs2005/lightgallery/internal/logging"
)

// DefaultRememberFor caps the lifetime of a remembered credential.
const DefaultRememberFor = 7 * 24 * time.Hour

// ErrNotAuthenticated is returned by FetchCurrentUser when no token is held.
var ErrNotAuthenticated = errors.New("not authenticated")

// UserSource resolves the current token into a user record.
type UserSource interface {
	UserInfo(ctx context.Context) (*models.User, error)
}

type Store struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	persisted bool
	user      *models.User

	durable     credentials.Repository
	volatile    credentials.Repository
	rememberFor time.Duration
	now         func() time.Time
	log         logging.Logger
}

type Option func(*Store)

// WithRememberFor sets the durable lifetime cap. Zero disables the cap.
func WithRememberFor(d time.Duration) Option {
	return func(s *Store) { s.rememberFor = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore returns an empty store. Call Load to restore a credential
// persisted by a previous run.
func NewStore(durable, volatile credentials.Repository, opts ...Option) *Store {
	s := &Store{
		durable:     durable,
		volatile:    volatile,
		rememberFor: DefaultRememberFor,
		now:         time.Now,
		log:         logging.Discard(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load restores the credential from storage, durable first. An expired
// credential is purged on the spot.
func (s *Store) Load(ctx context.Context) error {
	token, expiresAt, persisted, err := s.read(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.expiresAt = expiresAt
	s.persisted = persisted
	s.user = nil
	s.mu.Unlock()

	// A JWT past its exp is only dropped here, at startup. While running, an
	// expired access token is still sent so the pipeline can refresh it.
	if exp, ok := tokenExpiry(token); ok && !s.now().Before(exp) {
		if s.ClearIf(ctx, token) {
			s.log.Info(ctx, "stored token expired, purged")
		}
		return nil
	}
	if s.Token(ctx) == "" {
		s.log.Info(ctx, "stored credential expired, purged")
	}
	return nil
}

func (s *Store) read(ctx context.Context) (string, time.Time, bool, error) {
	token, err := s.durable.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", time.Time{}, false, fmt.Errorf("failed to read durable credential: %w", err)
	}
	if len(token) > 0 {
		raw, err := s.durable.Get(ctx, common.TokenExpireStorageKey)
		if err != nil {
			return "", time.Time{}, false, fmt.Errorf("failed to read credential expiry: %w", err)
		}
		return string(token), decodeExpiry(raw), true, nil
	}

	token, err = s.volatile.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", time.Time{}, false, fmt.Errorf("failed to read session credential: %w", err)
	}
	return string(token), time.Time{}, false, nil
}

// Set stores a freshly acquired token, overwriting any previous credential.
// The in-memory credential is always updated; a returned error only reports
// that mirroring it to storage failed.
func (s *Store) Set(ctx context.Context, token string, user *models.User, persist bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = cloneUser(user)
	s.persisted = persist
	s.expiresAt = time.Time{}
	if persist && s.rememberFor > 0 {
		s.expiresAt = s.now().Add(s.rememberFor)
	}

	return s.writeLocked(ctx)
}

// Replace swaps stale for fresh, keeping the persist mode and remember
// deadline. It reports false, changing nothing, when the store no longer
// holds stale.
func (s *Store) Replace(ctx context.Context, stale, fresh string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stale == "" || fresh == "" || s.token != stale {
		return false
	}
	s.token = fresh
	if err := s.writeLocked(ctx); err != nil {
		s.log.Warn(ctx, "refreshed credential not persisted", "error", err)
	}
	return true
}

func (s *Store) writeLocked(ctx context.Context) error {
	values := map[string][]byte{common.TokenStorageKey: []byte(s.token)}

	if !s.persisted {
		return errors.Join(
			s.volatile.Replace(ctx, values),
			s.durable.Clear(ctx),
		)
	}

	if !s.expiresAt.IsZero() {
		values[common.TokenExpireStorageKey] = encodeExpiry(s.expiresAt)
	}
	return errors.Join(
		s.durable.Replace(ctx, values),
		s.volatile.Clear(ctx),
	)
}

// Token returns the current token or "" when none is held or the remember
// deadline has passed. The token's own exp claim is not checked here: the
// server rejects it and the pipeline refreshes.
func (s *Store) Token(ctx context.Context) string {
	s.mu.RLock()
	token, expiresAt := s.token, s.expiresAt
	s.mu.RUnlock()

	if token == "" {
		return ""
	}
	if !expiresAt.IsZero() && s.now().After(expiresAt) {
		if s.ClearIf(ctx, token) {
			s.log.Info(ctx, "credential expired")
		}
		return ""
	}
	return token
}

// IsAuthenticated reports whether a non-expired token is held.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	return s.Token(ctx) != ""
}

// Persisted reports whether the current credential lives in durable storage.
func (s *Store) Persisted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.persisted
}

// ClearIf clears the credential only while it still holds token. It reports
// whether this call did the clearing.
func (s *Store) ClearIf(ctx context.Context, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" || s.token != token {
		return false
	}
	if err := s.clearLocked(ctx); err != nil {
		s.log.Warn(ctx, "credential storage not purged", "error", err)
	}
	return true
}

// Clear drops the credential from memory and both repositories. Idempotent.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked(ctx)
}

func (s *Store) clearLocked(ctx context.Context) error {
	s.token = ""
	s.user = nil
	s.persisted = false
	s.expiresAt = time.Time{}

	return errors.Join(s.durable.Clear(ctx), s.volatile.Clear(ctx))
}

// User returns a copy of the cached user record, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUser(s.user)
}

// Role is the cached user's role, RoleGuest when nobody is signed in.
func (s *Store) Role() models.Role {
	u := s.User()
	if u == nil || u.Role == "" {
		return models.RoleGuest
	}
	return u.Role
}

func (s *Store) IsAdmin() bool {
	return s.Role() == models.RoleAdmin
}

// FetchCurrentUser resolves the held token into a user record and caches
// it. Any failure tears the session down: a token that cannot be resolved
// to a user is treated as invalid.
func (s *Store) FetchCurrentUser(ctx context.Context, src UserSource) (*models.User, error) {
	if s.Token(ctx) == "" {
		return nil, ErrNotAuthenticated
	}

	user, err := src.UserInfo(ctx)
	if err != nil {
		if cerr := s.Clear(ctx); cerr != nil {
			s.log.Warn(ctx, "credential storage not purged", "error", cerr)
		}
		return nil, fmt.Errorf("fetch current user: %w", err)
	}

	s.mu.Lock()
	if s.token != "" {
		s.user = cloneUser(user)
	}
	s.mu.Unlock()

	return cloneUser(user), nil
}

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func encodeExpiry(t time.Time) []byte {
	return []byte(strconv.FormatInt(t.UnixMilli(), 10))
}

func decodeExpiry(raw []byte) time.Time {
	if len(raw) == 0 {
		return time.Time{}
	}
	ms, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		// An unreadable deadline is treated as already passed.
		return time.UnixMilli(0)
	}
	return time.UnixMilli(ms)
}
