package reconciler

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// PassSummary tallies one convergence pass. It is logged at the end of every
// pass; nothing is exported.
type PassSummary struct {
	// ID correlates the log lines of one pass.
	ID string

	Namespaces  int
	Credentials int

	// Pairs is the number of (namespace, credential) pairs processed.
	Pairs int

	Created   int
	Updated   int
	Unchanged int
	Skipped   int

	// Bound counts service accounts that gained a reference.
	Bound int

	// Failed counts pairs that hit an error in either step.
	Failed int

	// Interrupted is set when the context was cancelled mid-pass.
	Interrupted bool

	StartedAt time.Time
	Duration  time.Duration
}

func newPassSummary(namespaces, creds int) PassSummary {
	return PassSummary{
		ID:          uuid.New().String(),
		Namespaces:  namespaces,
		Credentials: creds,
		StartedAt:   time.Now(),
	}
}

func (s *PassSummary) recordOutcome(o Outcome) {
	switch o {
	case OutcomeCreated:
		s.Created++
	case OutcomeUpdated:
		s.Updated++
	case OutcomeUnchanged:
		s.Unchanged++
	case OutcomeSkipped:
		s.Skipped++
	}
}

func (s PassSummary) finish() PassSummary {
	s.Duration = time.Since(s.StartedAt)
	return s
}

// Writes returns the number of secret writes performed in the pass.
func (s PassSummary) Writes() int {
	return s.Created + s.Updated
}

// Attrs renders the summary for structured logging.
func (s PassSummary) Attrs() []slog.Attr {
	return []slog.Attr{
		slog.String("pass", s.ID),
		slog.Int("namespaces", s.Namespaces),
		slog.Int("credentials", s.Credentials),
		slog.Int("pairs", s.Pairs),
		slog.Int("created", s.Created),
		slog.Int("updated", s.Updated),
		slog.Int("unchanged", s.Unchanged),
		slog.Int("skipped", s.Skipped),
		slog.Int("bound", s.Bound),
		slog.Int("failed", s.Failed),
		slog.Bool("interrupted", s.Interrupted),
		slog.Duration("duration", s.Duration),
	}
}
