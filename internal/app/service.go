// Package service turns tracked sessions into display-ready views. It is
// the only caller of pkg/format that combines several formatters.
package service

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okian/courtfmt/internal/domain/model"
	"github.com/okian/courtfmt/internal/domain/types"
	"github.com/okian/courtfmt/pkg/format"
	"github.com/okian/courtfmt/pkg/logger"
	"github.com/okian/courtfmt/pkg/metrics"
)

const defaultMaxBatchSize = 500

// Service presents sessions using a shared Formatter.
type Service struct {
	formatter    *format.Formatter
	workerCount  int
	maxBatchSize int
	logger       logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFormatter sets the formatter used for every session.
func WithFormatter(f *format.Formatter) Option {
	return func(s *Service) {
		if f != nil {
			s.formatter = f
		}
	}
}

// WithWorkerCount bounds how many sessions of one batch are formatted at once.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithMaxBatchSize caps the number of sessions PresentAll accepts.
func WithMaxBatchSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.maxBatchSize = size
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		formatter:    format.New(),
		workerCount:  runtime.NumCPU(),
		maxBatchSize: defaultMaxBatchSize,
		logger:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Formatter returns the formatter sessions are rendered with.
func (s *Service) Formatter() *format.Formatter { return s.formatter }

// MaxBatchSize returns the largest batch PresentAll accepts.
func (s *Service) MaxBatchSize() int { return s.maxBatchSize }

// Present renders one session.
func (s *Service) Present(ctx context.Context, sess model.Session) (types.SessionView, error) {
	if err := ctx.Err(); err != nil {
		return types.SessionView{}, fmt.Errorf("context cancelled: %w", err)
	}
	if sess.StartTime.IsZero() {
		return types.SessionView{}, fmt.Errorf("%w: missing start_time", ErrInvalidSession)
	}

	view := types.SessionView{
		Sport:        format.SportName(sess.Sport),
		Type:         format.SportName(sess.SessionType),
		DetailedDate: s.formatter.RenderDetailed(sess.StartTime),
		Rallies:      sess.TotalRallies,
	}
	if sess.ID != uuid.Nil {
		view.ID = sess.ID.String()
	}

	date, err := s.formatter.Render(sess.StartTime, format.DateOptions{})
	if err != nil {
		return types.SessionView{}, s.fail("present", err)
	}
	view.Date = date

	if !sess.Ended() {
		view.Duration = format.InProgress
		view.DetailedDuration = format.InProgress
		view.InProgress = true
	} else {
		span := sess.EndTime.Sub(sess.StartTime)
		if view.Duration, err = format.CompactDuration(span); err != nil {
			return types.SessionView{}, s.fail("present", fmt.Errorf("%w: %w", ErrInvalidSession, err))
		}
		// Same span and sign as above, so this cannot fail.
		view.DetailedDuration, _ = format.VerboseDuration(span)
		if sess.DurationSeconds == nil {
			view.Clock = format.Clock(int(span / time.Second))
		}
	}
	if sess.DurationSeconds != nil {
		view.Clock = format.Clock(*sess.DurationSeconds)
	}
	if sess.IsMatch() {
		view.Score = fmt.Sprintf("%d-%d", sess.ScoreMe, sess.ScoreOpponent)
	}

	metrics.RecordFormat("present")
	metrics.RecordSessionsPresented(1)
	return view, nil
}

// PresentAll renders a batch, keeping input order. The first failure
// cancels the remaining work and is returned.
func (s *Service) PresentAll(ctx context.Context, sessions []model.Session) ([]types.SessionView, error) {
	if len(sessions) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: %d sessions, limit %d", ErrBatchTooLarge, len(sessions), s.maxBatchSize)
	}
	metrics.RecordBatchSize(len(sessions))

	views := make([]types.SessionView, len(sessions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workerCount)
	for i := range sessions {
		i := i
		g.Go(func() error {
			v, err := s.Present(gctx, sessions[i])
			if err != nil {
				return fmt.Errorf("sessions[%d]: %w", i, err)
			}
			views[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn(ctx, "batch presentation failed",
			logger.Int("batch_size", len(sessions)),
			logger.Error(err),
		)
		return nil, err
	}

	s.logger.Debug(ctx, "batch presented", logger.Int("batch_size", len(sessions)))
	return views, nil
}

func (s *Service) fail(op string, err error) error {
	metrics.RecordFormatError(op, format.Kind(err))
	return err
}
