// Package testsessions generates realistic sample sessions for load tests,
// benchmarks and the CLI's generate command.
package testsessions

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/okian/courtfmt/internal/domain/model"
)

// ErrInvalidCount is returned for a non-positive session count.
var ErrInvalidCount = errors.New("session count must be positive")

// Generation ranges.
const (
	minDurationMinutes = 5
	maxDurationMinutes = 150
	maxStartOffsetDays = 60
	maxRallies         = 400
	maxGamePoints      = 21
	activeRatioPercent = 85 // watch-reported active time relative to wall time
	runningOneIn       = 10 // roughly one session in ten is still running
)

// DefaultSports are drawn from when Config.Sports is empty.
var DefaultSports = []string{"table_tennis", "badminton", "squash", "padel", "tennis", "pickleball"}

// Config controls generation.
type Config struct {
	Count  int       // Number of sessions
	Sports []string  // Sport identifiers to draw from
	Now    time.Time // Upper bound for start times; zero means time.Now
}

// Generate creates cfg.Count sessions with unique ids, starting within the
// last maxStartOffsetDays days. Finished sessions always end after they start.
func Generate(ctx context.Context, cfg Config) ([]model.Session, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, cfg.Count)
	}
	sports := cfg.Sports
	if len(sports) == 0 {
		sports = DefaultSports
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC().Truncate(time.Second)

	sessions := make([]model.Session, cfg.Count)
	for i := range sessions {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled during session generation: %w", err)
		}
		sessions[i] = generateSingle(now, sports)
	}
	return sessions, nil
}

func generateSingle(now time.Time, sports []string) model.Session {
	start := now.Add(-time.Duration(randInt(maxStartOffsetDays*24*60)) * time.Minute)
	s := model.Session{
		ID:          uuid.New(),
		Sport:       sports[randInt(len(sports))],
		SessionType: model.SessionTypeTraining,
		StartTime:   start,
	}
	if randInt(2) == 0 {
		s.SessionType = model.SessionTypeMatch
	}
	if randInt(runningOneIn) == 0 {
		return s
	}

	minutes := minDurationMinutes + randInt(maxDurationMinutes-minDurationMinutes+1)
	end := start.Add(time.Duration(minutes)*time.Minute + time.Duration(randInt(60))*time.Second)
	active := int(end.Sub(start)/time.Second) * activeRatioPercent / 100
	s.EndTime = &end
	s.DurationSeconds = &active
	s.TotalRallies = randInt(maxRallies + 1)
	if s.IsMatch() {
		s.ScoreMe = randInt(maxGamePoints + 1)
		s.ScoreOpponent = randInt(maxGamePoints + 1)
	}
	return s
}

// randInt returns a uniform int in [0, n) using crypto/rand.
func randInt(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
