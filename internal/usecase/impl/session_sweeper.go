package impl

import (
	"context"
	"log/slog"
	"time"

	"tracer/config"
	"tracer/internal/domain/repository"

	"go.uber.org/fx"
)

// SessionSweeper periodically deletes expired sessions so the sessions table
// does not grow without bound. Expired sessions are already rejected at
// lookup time; the sweep is purely housekeeping.
type SessionSweeper struct {
	sessionRepo repository.SessionRepository
	interval    time.Duration
	logger      *slog.Logger
	cancel      context.CancelFunc
	done        chan struct{}
}

// SessionSweeperParams holds dependencies for SessionSweeper, injected by Fx.
type SessionSweeperParams struct {
	fx.In
	fx.Lifecycle

	SessionRepo repository.SessionRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionSweeper constructs the sweeper and registers its lifecycle hooks.
func NewSessionSweeper(params SessionSweeperParams) *SessionSweeper {
	interval := 15 * time.Minute
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.SessionSweepInterval > 0 {
		interval = params.Config.Auth.SessionSweepInterval
	}

	sweeper := &SessionSweeper{
		sessionRepo: params.SessionRepo,
		interval:    interval,
		logger:      params.Logger,
		done:        make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			runCtx, cancel := context.WithCancel(context.Background())
			sweeper.cancel = cancel
			go sweeper.run(runCtx)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			if sweeper.cancel != nil {
				sweeper.cancel()
			}
			select {
			case <-sweeper.done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})

	return sweeper
}

func (s *SessionSweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	if err := s.sessionRepo.DeleteExpired(ctx); err != nil {
		s.logger.Warn("Expired session sweep failed", slog.Any("error", err))

		return
	}
	s.logger.Debug("Expired session sweep completed")
}
