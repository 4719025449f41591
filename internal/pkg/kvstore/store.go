package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/murkotick/menswear-storefront/internal/pkg/committer"
)

const (
	DefaultNamespace = "menstore"
	defaultTimeout   = 3 * time.Second
)

// Store reads and writes JSON values under "<namespace>:<key>". It never
// surfaces errors: misses and corrupt documents fall back to the caller's
// default, failed writes are logged and dropped. In-memory state stays
// authoritative for the session when a write cannot be made durable.
type Store struct {
	backend   Backend
	namespace string
	timeout   time.Duration
	logger    *log.Logger
}

type Option func(*Store)

func WithNamespace(ns string) Option {
	return func(s *Store) {
		if ns != "" {
			s.namespace = ns
		}
	}
}

// WithTimeout bounds each backend call.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:   backend,
		namespace: DefaultNamespace,
		timeout:   defaultTimeout,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Key(key string) string {
	return s.namespace + ":" + key
}

// Read decodes the value stored at key into dst. It reports whether dst was
// populated; on false dst is left untouched.
func (s *Store) Read(key string, dst any) bool {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	raw, err := s.backend.Get(ctx, s.Key(key))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Printf("[kvstore] read %s: %v", key, err)
		}
		return false
	}

	// Decode into a scratch value first so a half-parsed document never
	// leaks into dst.
	var probe json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		s.logger.Printf("[kvstore] corrupt value at %s: %v", key, err)
		return false
	}
	if string(probe) == "null" {
		return false
	}
	if err := decodeInto(probe, dst); err != nil {
		s.logger.Printf("[kvstore] decode %s: %v", key, err)
		return false
	}
	return true
}

// Write stores a single value.
func (s *Store) Write(key string, value any) {
	plan := committer.NewPlan()
	if !s.Stage(plan, key, value) {
		return
	}
	s.Commit(plan)
}

// Stage encodes value and adds it to plan. It returns false when the value
// could not be encoded.
func (s *Store) Stage(plan *committer.Plan, key string, value any) bool {
	b, err := json.Marshal(value)
	if err != nil {
		s.logger.Printf("[kvstore] encode %s: %v", key, err)
		return false
	}
	plan.Add(s.Key(key), b)
	return true
}

// Commit applies every staged write through the backend's batch path.
func (s *Store) Commit(plan *committer.Plan) {
	if plan.IsEmpty() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.backend.Apply(ctx, plan); err != nil {
		s.logger.Printf("[kvstore] write %v: %v", plan.Keys(), err)
	}
}

func (s *Store) Close() error {
	return s.backend.Close()
}
