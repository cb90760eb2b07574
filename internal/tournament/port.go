package tournament

import "github.com/lox/parlour/internal/config"

// Phase says which moment of play a Snapshot captures.
type Phase int

const (
	PhaseTournamentStart Phase = iota
	PhaseRoundStart
	PhaseTurn
	PhaseRoundOver
	PhaseTournamentOver
)

func (p Phase) String() string {
	switch p {
	case PhaseTournamentStart:
		return "tournament_start"
	case PhaseRoundStart:
		return "round_start"
	case PhaseTurn:
		return "turn"
	case PhaseRoundOver:
		return "round_over"
	case PhaseTournamentOver:
		return "tournament_over"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable picture of play handed to renderers. View carries
// the game-specific part (an rps.RoundView or a twentyone.TableView).
type Snapshot struct {
	Game         string
	TournamentID string
	Round        int
	Phase        Phase
	Threshold    config.Threshold
	Standings    []Standing
	// Winner is the tournament winner on PhaseTournamentOver.
	Winner string
	View   any
}

// Renderer displays snapshots. Render is fire-and-forget: play never depends
// on what a renderer does with a snapshot or how long it takes.
type Renderer interface {
	Render(Snapshot)
}

// Port is the presentation side of a tournament: it renders state and
// supplies the human decisions every game shares. Implementations only
// return values from the offered domain.
type Port interface {
	Renderer
	PromptYesNo(prompt string) (bool, error)
	PromptWinThreshold() (config.Threshold, error)
}

type tee []Renderer

func (t tee) Render(s Snapshot) {
	for _, r := range t {
		r.Render(s)
	}
}

// Tee returns a Renderer that hands every snapshot to each non-nil renderer in order.
func Tee(renderers ...Renderer) Renderer {
	var t tee
	for _, r := range renderers {
		if r != nil {
			t = append(t, r)
		}
	}
	return t
}
