// Package cleanup provides data retention services.
package cleanup

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config controls conversation retention.
type Config struct {
	// RetentionDays is the age after which conversations are removed.
	// Zero disables retention entirely.
	RetentionDays int

	// Interval between retention sweeps.
	Interval time.Duration
}

// LoadConfigFromEnv reads RETENTION_DAYS (default 0, disabled) and
// CLEANUP_INTERVAL (default 1h).
func LoadConfigFromEnv() Config {
	cfg := Config{Interval: time.Hour}
	if v := os.Getenv("RETENTION_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			cfg.RetentionDays = days
		}
	}
	if v := os.Getenv("CLEANUP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Interval = d
		}
	}
	return cfg
}

// conversationPruner is the slice of the conversation service the retention
// loop needs.
type conversationPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// Service periodically removes conversations past the retention window,
// cascading to their nodes and attachments. Sweeps are idempotent and safe
// to run from multiple replicas.
type Service struct {
	config        Config
	conversations conversationPruner

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention service.
func NewService(cfg Config, conversations conversationPruner) *Service {
	return &Service{config: cfg, conversations: conversations}
}

// Start launches the background retention loop. A zero retention window
// makes Start a no-op.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil || s.config.RetentionDays <= 0 {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"retention_days", s.config.RetentionDays,
		"interval", s.config.Interval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.Sweep(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one retention pass.
func (s *Service) Sweep(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.RetentionDays)
	removed, err := s.conversations.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		slog.Error("Retention sweep failed", "error", err)
		return
	}
	if removed > 0 {
		slog.Info("Removed expired conversations", "count", removed, "cutoff", cutoff)
	}
}
