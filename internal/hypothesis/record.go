// Package hypothesis records user hypotheses about a collision in an
// append-only CSV log.
//
// Each row holds, in order: timestamp, mass1, velocity1, mass2, velocity2,
// hypothesis. No header is written and existing rows are never rewritten.
package hypothesis

import (
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/collide/internal/collision"
)

// TimestampLayout is ISO-8601 with microseconds and zone offset.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Columns names the CSV fields in row order.
var Columns = []string{"timestamp", "mass1", "velocity1", "mass2", "velocity2", "hypothesis"}

// Record is one submitted hypothesis with the inputs it was made against.
type Record struct {
	Timestamp time.Time
	Mass1     float64
	Velocity1 float64
	Mass2     float64
	Velocity2 float64
	Text      string
}

// NewSubmission builds a record stamped with now. Text is stored as entered
// but must contain something other than whitespace.
func NewSubmission(now time.Time, p1, p2 collision.Particle, text string) (Record, error) {
	if strings.TrimSpace(text) == "" {
		return Record{}, ErrEmptySubmission
	}
	return Record{
		Timestamp: now,
		Mass1:     p1.Mass,
		Velocity1: p1.Velocity,
		Mass2:     p2.Mass,
		Velocity2: p2.Velocity,
		Text:      text,
	}, nil
}

// Row returns the CSV fields of r. Floats use the shortest representation
// that parses back to the same value.
func (r Record) Row() []string {
	return []string{
		r.Timestamp.Format(TimestampLayout),
		formatFloat(r.Mass1),
		formatFloat(r.Velocity1),
		formatFloat(r.Mass2),
		formatFloat(r.Velocity2),
		r.Text,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
