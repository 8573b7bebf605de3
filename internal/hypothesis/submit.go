package hypothesis

import (
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/collide/internal/collision"
)

// Submitter validates, stamps and appends hypotheses.
type Submitter struct {
	w      Writer
	now    func() time.Time
	logger *zap.Logger
}

// NewSubmitter returns a submitter writing to w, stamped with time.Now.
func NewSubmitter(w Writer, logger *zap.Logger) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{w: w, now: time.Now, logger: logger}
}

// WithClock replaces the wall clock, mainly for tests.
func (s *Submitter) WithClock(now func() time.Time) *Submitter {
	s.now = now
	return s
}

// Submit appends one record for p1, p2 and text. Empty or whitespace-only
// text returns ErrEmptySubmission without touching the writer.
func (s *Submitter) Submit(p1, p2 collision.Particle, text string) (Record, error) {
	rec, err := NewSubmission(s.now(), p1, p2, text)
	if err != nil {
		s.logger.Warn("hypothesis rejected", zap.Error(err))
		return Record{}, err
	}
	if err := s.w.Append(rec); err != nil {
		s.logger.Error("hypothesis append failed", zap.Error(err))
		return Record{}, err
	}
	s.logger.Info("hypothesis recorded",
		zap.Time("timestamp", rec.Timestamp),
		zap.Float64("mass1", rec.Mass1),
		zap.Float64("velocity1", rec.Velocity1),
		zap.Float64("mass2", rec.Mass2),
		zap.Float64("velocity2", rec.Velocity2),
		zap.Int("length", len(rec.Text)),
	)
	return rec, nil
}
