package session

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"expenses/internal/cache"
	"expenses/internal/core"
	"expenses/internal/editor"
)

// SeedFunc supplies initial expenses for a new session.
type SeedFunc func() []core.ExpenseInput

// Config bounds the number and lifetime of sessions.
type Config struct {
	TTL        time.Duration
	MaxEntries int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		TTL:        2 * time.Hour,
		MaxEntries: 1000,
	}
}

// Store keeps sessions in an LRU cache with idle expiry.
type Store struct {
	sessions   *cache.LRUCache[*Session]
	seed       SeedFunc
	editorOpts []editor.Option
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithSeed fills every new session with the expenses returned by fn.
func WithSeed(fn SeedFunc) Option {
	return func(s *Store) { s.seed = fn }
}

// WithEditorOptions is forwarded to every session's editor.
func WithEditorOptions(opts ...editor.Option) Option {
	return func(s *Store) { s.editorOpts = append(s.editorOpts, opts...) }
}

// WithLogger sets the store logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore creates an empty session store.
func NewStore(cfg Config, opts ...Option) *Store {
	def := DefaultConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = def.MaxEntries
	}
	s := &Store{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.sessions = cache.NewLRUCache[*Session](cfg.MaxEntries, cfg.TTL,
		cache.WithSlidingExpiration[*Session](),
		cache.WithEvictionCallback(func(id string, sess *Session) {
			s.logger.Debug("Session evicted", "session_id", id, "expenses", sess.Len())
		}),
	)
	return s
}

// Cache exposes the backing cache so a cache.Manager can sweep it.
func (s *Store) Cache() cache.Cleaner {
	return s.sessions
}

// Get returns a live session.
func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	return s.sessions.Get(id)
}

// Create starts a new session with a random ID.
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString(), s.now(), s.editorOpts...)
	if s.seed != nil {
		for _, in := range s.seed() {
			if _, err := sess.Append(in); err != nil {
				s.logger.Warn("Skipping invalid seed expense", "error", err, "description", in.Description)
			}
		}
	}
	s.sessions.Set(sess.ID, sess)
	s.logger.Debug("Session created", "session_id", sess.ID, "expenses", sess.Len())
	return sess
}

// Resolve returns the session for id, creating one when it is unknown or
// expired. created reports whether a new session was made.
func (s *Store) Resolve(id string) (sess *Session, created bool) {
	if sess, ok := s.Get(id); ok {
		return sess, false
	}
	return s.Create(), true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Size()
}
