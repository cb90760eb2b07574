// Package config holds the immutable settings both games are built from.
//
// A Config starts from Default, is optionally overlaid with an HCL or TOML
// file (Load) and CLI flags, and is checked once with Validate before any
// round is played. Components receive the sections they need by value.
package config

import (
	"fmt"
	"strings"
	"time"
)

// LizardSpock selects whether the extended Rock-Paper-Scissors rules apply.
type LizardSpock int

const (
	// LizardSpockAsk prompts at the start of every tournament.
	LizardSpockAsk LizardSpock = iota
	LizardSpockOff
	LizardSpockOn
)

func (l LizardSpock) String() string {
	switch l {
	case LizardSpockOff:
		return "off"
	case LizardSpockOn:
		return "on"
	default:
		return "ask"
	}
}

// ParseLizardSpock accepts ask, on/yes/true and off/no/false.
func ParseLizardSpock(s string) (LizardSpock, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ask":
		return LizardSpockAsk, nil
	case "on", "yes", "true":
		return LizardSpockOn, nil
	case "off", "no", "false":
		return LizardSpockOff, nil
	default:
		return 0, invalid("lizard_spock", s, "want ask, on or off")
	}
}

// Config is the full set of game settings.
type Config struct {
	RPS       RPS
	TwentyOne TwentyOne
	Pacing    Pacing
}

// RPS configures a Rock-Paper-Scissors tournament.
type RPS struct {
	Threshold Threshold
	// AskThreshold prompts for the threshold at the start of every tournament.
	AskThreshold bool
	LizardSpock  LizardSpock
	// Players is empty when competitors are set up interactively.
	Players []Player
}

// TwentyOne configures a Twenty-One tournament.
type TwentyOne struct {
	Threshold     Threshold
	HandLimit     int
	CPUStayTarget int
	Humans        int
	CPUs          int
	HumanPrefix   string
	CPUPrefix     string
}

// InitialDraw is the number of cards each seat receives at the start of a round.
func (t TwentyOne) InitialDraw() int {
	return t.HandLimit / 10
}

// Seats names every competitor: humans first, then CPUs. A lone human or CPU
// drops the number suffix.
func (t TwentyOne) Seats() []Player {
	seats := make([]Player, 0, t.Humans+t.CPUs)
	add := func(prefix string, count int, kind Kind) {
		for i := 1; i <= count; i++ {
			name := prefix
			if count > 1 {
				name = fmt.Sprintf("%s %d", prefix, i)
			}
			seats = append(seats, Player{Name: name, Kind: kind})
		}
	}
	add(t.HumanPrefix, t.Humans, Human)
	add(t.CPUPrefix, t.CPUs, Automated)
	return seats
}

// Pacing holds the presentational pauses. They never change an outcome and
// are all skipped when Enabled is false.
type Pacing struct {
	Enabled  bool
	CPUThink time.Duration
	Reveal   time.Duration
	Shuffle  time.Duration
	Deal     time.Duration
	Hit      time.Duration
	Stay     time.Duration
	Bust     time.Duration
}

// Default returns the settings the games ship with.
func Default() Config {
	return Config{
		RPS: RPS{
			Threshold:    1,
			AskThreshold: true,
			LizardSpock:  LizardSpockAsk,
		},
		TwentyOne: TwentyOne{
			Threshold:     2,
			HandLimit:     21,
			CPUStayTarget: 17,
			Humans:        2,
			CPUs:          2,
			HumanPrefix:   "Human",
			CPUPrefix:     "Robot",
		},
		Pacing: Pacing{
			Enabled:  true,
			CPUThink: 1100 * time.Millisecond,
			Reveal:   600 * time.Millisecond,
			Shuffle:  1200 * time.Millisecond,
			Deal:     250 * time.Millisecond,
			Hit:      500 * time.Millisecond,
			Stay:     800 * time.Millisecond,
			Bust:     1300 * time.Millisecond,
		},
	}
}

// Validate reports the first setting that cannot be played with.
func (c Config) Validate() error {
	if err := c.RPS.Validate(); err != nil {
		return err
	}
	if err := c.TwentyOne.Validate(); err != nil {
		return err
	}
	return c.Pacing.Validate()
}

// Validate checks the Rock-Paper-Scissors settings.
func (r RPS) Validate() error {
	if err := r.Threshold.Validate(); err != nil {
		return err
	}
	if n := len(r.Players); n != 0 && n != 2 {
		return invalid("rps players", n, "a match needs exactly two players")
	}
	return validatePlayers("rps player", r.Players)
}

// Validate checks the Twenty-One settings.
func (t TwentyOne) Validate() error {
	if err := t.Threshold.Validate(); err != nil {
		return err
	}
	if t.HandLimit < 10 {
		return invalid("hand_limit", t.HandLimit, "must be at least 10")
	}
	if t.CPUStayTarget < 1 || t.CPUStayTarget > t.HandLimit {
		return invalid("cpu_stay_target", t.CPUStayTarget, "must be between 1 and the hand limit %d", t.HandLimit)
	}
	if t.Humans < 0 {
		return invalid("humans", t.Humans, "cannot be negative")
	}
	if t.CPUs < 0 {
		return invalid("cpus", t.CPUs, "cannot be negative")
	}
	if t.Humans+t.CPUs < 1 {
		return invalid("seats", t.Humans+t.CPUs, "a table needs at least one player")
	}
	if t.Humans > 0 && strings.TrimSpace(t.HumanPrefix) == "" {
		return invalid("human_prefix", t.HumanPrefix, "cannot be empty")
	}
	if t.CPUs > 0 && strings.TrimSpace(t.CPUPrefix) == "" {
		return invalid("cpu_prefix", t.CPUPrefix, "cannot be empty")
	}
	return validatePlayers("twentyone seat", t.Seats())
}

// Validate checks that no pause is negative, in declaration order.
func (p Pacing) Validate() error {
	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"cpu_think", p.CPUThink},
		{"reveal", p.Reveal},
		{"shuffle", p.Shuffle},
		{"deal", p.Deal},
		{"hit", p.Hit},
		{"stay", p.Stay},
		{"bust", p.Bust},
	} {
		if d.value < 0 {
			return invalid("pacing "+d.name, d.value, "cannot be negative")
		}
	}
	return nil
}

func validatePlayers(field string, players []Player) error {
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return invalid(field, name, "name cannot be empty")
		}
		key := strings.ToLower(name)
		if seen[key] {
			return invalid(field, name, "names must be unique (case-insensitive)")
		}
		seen[key] = true
	}
	return nil
}
