// Package journal writes a machine-readable JSON-lines record of play: one
// line when a tournament starts, one per finished round and one when the
// tournament ends.
package journal

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lox/parlour/internal/rps"
	"github.com/lox/parlour/internal/tournament"
	"github.com/lox/parlour/internal/twentyone"
)

// Journal is a tournament.Renderer that records snapshots with zerolog.
type Journal struct {
	logger zerolog.Logger
	closer io.Closer
}

// New journals to w.
func New(w io.Writer) *Journal {
	return &Journal{
		logger: zerolog.New(w).With().Timestamp().Logger(),
	}
}

// Open appends to the file at path, creating it if needed.
func Open(path string) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	j := New(f)
	j.closer = f
	return j, nil
}

// Close closes the underlying file when the journal owns one.
func (j *Journal) Close() error {
	if j.closer == nil {
		return nil
	}
	return j.closer.Close()
}

// Render records tournament boundaries and finished rounds; every other phase is skipped.
func (j *Journal) Render(s tournament.Snapshot) {
	switch s.Phase {
	case tournament.PhaseTournamentStart:
		j.event("tournament_start", s).
			Str("threshold", s.Threshold.String()).
			Strs("competitors", ids(s.Standings)).
			Send()
	case tournament.PhaseRoundOver:
		e := j.event("round", s).Dict("standings", standings(s.Standings))
		switch v := s.View.(type) {
		case rps.RoundView:
			e = rpsRound(e, v)
		case twentyone.TableView:
			e = twentyOneRound(e, v)
		}
		e.Send()
	case tournament.PhaseTournamentOver:
		j.event("tournament_over", s).
			Str("winner", s.Winner).
			Int("rounds", s.Round).
			Dict("standings", standings(s.Standings)).
			Send()
	}
}

func (j *Journal) event(name string, s tournament.Snapshot) *zerolog.Event {
	e := j.logger.Log().
		Str("event", name).
		Str("game", s.Game).
		Str("tournament", s.TournamentID)
	if s.Round > 0 {
		e = e.Int("round", s.Round)
	}
	return e
}

func rpsRound(e *zerolog.Event, v rps.RoundView) *zerolog.Event {
	winner, _ := v.Result.Winner()
	if v.Rules != nil {
		e = e.Int("moves_available", v.Rules.Len())
	}
	return e.
		Str("outcome", v.Result.Outcome.String()).
		Str("winner", winner).
		Dict("moves", zerolog.Dict().
			Str(v.Result.A.ID, v.Result.A.Move.String()).
			Str(v.Result.B.ID, v.Result.B.Move.String())).
		Dict("reasons", zerolog.Dict().
			Str(v.Result.A.ID, v.Decisions[0].Reason.String()).
			Str(v.Result.B.ID, v.Decisions[1].Reason.String()))
}

func twentyOneRound(e *zerolog.Event, v twentyone.TableView) *zerolog.Event {
	hands := zerolog.Arr()
	for _, s := range v.Seats {
		cards := make([]string, len(s.Cards))
		for i, c := range s.Cards {
			cards[i] = c.String()
		}
		hands.Dict(zerolog.Dict().
			Str("seat", s.ID).
			Strs("cards", cards).
			Int("value", s.Value).
			Bool("bust", s.Bust))
	}
	e = e.Array("hands", hands).Int("deck_generations", v.DeckGenerations)
	if v.Verdict != nil {
		e = e.Str("verdict", v.Verdict.Kind.String()).Str("winner", v.Verdict.Winner)
	}
	return e
}

func standings(st []tournament.Standing) *zerolog.Event {
	d := zerolog.Dict()
	for _, s := range st {
		d = d.Int(s.ID, s.Score)
	}
	return d
}

func ids(st []tournament.Standing) []string {
	out := make([]string, len(st))
	for i, s := range st {
		out[i] = s.ID
	}
	return out
}
