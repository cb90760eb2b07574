package tournament

import (
	"fmt"

	"github.com/lox/parlour/internal/config"
)

// Standing is one competitor's cumulative score.
type Standing struct {
	ID    string
	Score int
}

// Scoreboard tracks round wins per competitor in seat order.
type Scoreboard struct {
	order     []string
	scores    map[string]int
	threshold config.Threshold
}

// NewScoreboard creates a zeroed scoreboard. Competitor ids must be unique.
func NewScoreboard(threshold config.Threshold, ids ...string) (*Scoreboard, error) {
	if err := threshold.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("scoreboard needs at least one competitor")
	}

	sb := &Scoreboard{
		order:     append([]string(nil), ids...),
		scores:    make(map[string]int, len(ids)),
		threshold: threshold,
	}
	for _, id := range ids {
		if _, dup := sb.scores[id]; dup {
			return nil, fmt.Errorf("duplicate competitor %q", id)
		}
		sb.scores[id] = 0
	}
	return sb, nil
}

// Credit adds one round win to id.
func (sb *Scoreboard) Credit(id string) error {
	if _, ok := sb.scores[id]; !ok {
		return fmt.Errorf("unknown competitor %q", id)
	}
	sb.scores[id]++
	return nil
}

// Score returns id's current score.
func (sb *Scoreboard) Score(id string) int {
	return sb.scores[id]
}

// Threshold returns the win threshold in force.
func (sb *Scoreboard) Threshold() config.Threshold {
	return sb.threshold
}

// SetThreshold changes the threshold, normally between tournaments.
func (sb *Scoreboard) SetThreshold(t config.Threshold) error {
	if err := t.Validate(); err != nil {
		return err
	}
	sb.threshold = t
	return nil
}

// Standings returns a copy of every score in seat order.
func (sb *Scoreboard) Standings() []Standing {
	out := make([]Standing, len(sb.order))
	for i, id := range sb.order {
		out[i] = Standing{ID: id, Score: sb.scores[id]}
	}
	return out
}

// Leader returns the highest score; the earliest seat wins ties.
func (sb *Scoreboard) Leader() Standing {
	best := Standing{ID: sb.order[0], Score: sb.scores[sb.order[0]]}
	for _, id := range sb.order[1:] {
		if s := sb.scores[id]; s > best.Score {
			best = Standing{ID: id, Score: s}
		}
	}
	return best
}

// Winner reports the tournament winner once the leading score reaches the
// threshold. A round credits at most one competitor, so with two competitors
// only one can ever cross the threshold first.
func (sb *Scoreboard) Winner() (string, bool) {
	leader := sb.Leader()
	if sb.threshold.Reached(leader.Score) {
		return leader.ID, true
	}
	return "", false
}

// Reset zeroes every score, keeping competitors and threshold.
func (sb *Scoreboard) Reset() {
	for id := range sb.scores {
		sb.scores[id] = 0
	}
}
