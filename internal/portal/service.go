// Package portal implements the club's entity operations on top of the
// record store. Every operation reads the whole collection, works on it in
// memory and, for writes, stores the whole collection back. There is no
// locking, so concurrent writers race and the last write wins.
package portal

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/klub/internal/logger"
	"github.com/MrSnakeDoc/klub/internal/seed"
	"github.com/MrSnakeDoc/klub/internal/store"
)

const (
	defaultAdminEmail    = "admin@klub.com"
	defaultAdminPassword = "password"
	defaultAdminToken    = "fake-jwt-token"
)

// Credentials is the single admin account accepted by Login.
type Credentials struct {
	Email    string
	Password string
	Token    string
}

type Service struct {
	backend store.Backend
	seed    seed.Data
	log     logger.Logger
	now     func() time.Time
	latency time.Duration
	creds   Credentials
}

type Option func(*Service)

// WithClock overrides the time source used for ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLatency delays every operation by d.
func WithLatency(d time.Duration) Option {
	return func(s *Service) { s.latency = d }
}

func WithCredentials(c Credentials) Option {
	return func(s *Service) {
		if c.Email != "" {
			s.creds.Email = c.Email
		}
		if c.Password != "" {
			s.creds.Password = c.Password
		}
		if c.Token != "" {
			s.creds.Token = c.Token
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

// New builds a service over backend. data supplies the fallback served when a
// collection is missing and the content written by Seed.
func New(backend store.Backend, data seed.Data, opts ...Option) *Service {
	s := &Service{
		backend: backend,
		seed:    data,
		log:     logger.Nop(),
		now:     time.Now,
		creds: Credentials{
			Email:    defaultAdminEmail,
			Password: defaultAdminPassword,
			Token:    defaultAdminToken,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed writes the seed data into the backend. Without reset only missing
// collections are written.
func (s *Service) Seed(ctx context.Context, reset bool) (seed.Result, error) {
	res, err := seed.Apply(ctx, s.backend, s.seed, reset)
	if err != nil {
		return res, err
	}
	if len(res.Written) > 0 {
		s.log.Info("seeded collections",
			logger.Int("written", len(res.Written)),
			logger.Bool("reset", reset))
	}
	return res, nil
}

// Purge removes every collection from the backend.
func (s *Service) Purge(ctx context.Context) error {
	if err := seed.Purge(ctx, s.backend); err != nil {
		return err
	}
	s.log.Warn("purged collections", logger.Int("count", len(store.Keys())))
	return nil
}

// Ping checks the backend.
func (s *Service) Ping(ctx context.Context) error {
	return s.backend.Ping(ctx)
}

// AdminToken is the bearer token handed out by Login.
func (s *Service) AdminToken() string {
	return s.creds.Token
}

// delay simulates network latency. It returns early with ctx's error.
func (s *Service) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
