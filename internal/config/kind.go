package config

import "strings"

// Kind tells who makes a competitor's decisions.
type Kind int

const (
	Human Kind = iota
	Automated
)

func (k Kind) String() string {
	switch k {
	case Human:
		return "human"
	case Automated:
		return "cpu"
	default:
		return "unknown"
	}
}

// ParseKind accepts the names used in config files and at the setup prompt.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "human":
		return Human, nil
	case "c", "cpu", "robot", "automated", "bot":
		return Automated, nil
	default:
		return 0, invalid("player kind", s, "want human or cpu")
	}
}

// Player declares one competitor.
type Player struct {
	Name string
	Kind Kind
}
