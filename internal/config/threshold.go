package config

import (
	"math"
	"strconv"
	"strings"
)

// Threshold is the number of round wins that ends a tournament.
type Threshold int

// Unlimited never ends the tournament on score; play stops when the user says
// so. It sits outside every count a user can type, so only ParseThreshold's
// keywords produce it.
const Unlimited Threshold = math.MinInt

// NewThreshold validates a win count.
func NewThreshold(wins int) (Threshold, error) {
	if wins < 1 {
		return 0, invalid("win threshold", wins, "must be at least 1")
	}
	return Threshold(wins), nil
}

// ParseThreshold accepts a positive integer or one of "u", "unlimited", "endless".
func ParseThreshold(s string) (Threshold, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "unlimited", "endless":
		return Unlimited, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, invalid("win threshold", strconv.Quote(s), "want a positive number or \"unlimited\"")
	}
	return NewThreshold(n)
}

// Validate rejects zero and negative thresholds other than Unlimited.
func (t Threshold) Validate() error {
	if t == Unlimited || t >= 1 {
		return nil
	}
	return invalid("win threshold", int(t), "must be at least 1")
}

// Reached reports whether score ends the tournament.
func (t Threshold) Reached(score int) bool {
	return t != Unlimited && score >= int(t)
}

// IsUnlimited reports whether the threshold can never be reached.
func (t Threshold) IsUnlimited() bool {
	return t == Unlimited
}

func (t Threshold) String() string {
	if t == Unlimited {
		return "Endless"
	}
	return strconv.Itoa(int(t))
}
