package starfighter

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session holds the counters of one play-through.
type Session struct {
	ID            string
	EnemiesKilled int
	EnemiesMissed int
	StartedAt     time.Time
	FinishedAt    time.Time // Zero until the player dies
}

// NewSession starts a session at the given time.
func NewSession(startedAt time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: startedAt,
	}
}

// Finish records the end time. Only the first call has an effect; it
// reports whether this call was the one that finished the session.
func (s *Session) Finish(at time.Time) bool {
	if s.Finished() {
		return false
	}
	s.FinishedAt = at
	return true
}

// Finished reports whether the end time has been recorded.
func (s *Session) Finished() bool {
	return !s.FinishedAt.IsZero()
}

// Duration returns how long the session lasted, or zero while it runs.
func (s *Session) Duration() time.Duration {
	if !s.Finished() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// FormatDuration renders d as H:MM:SS, dropping fractions of a second.
func FormatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	sec := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
}
