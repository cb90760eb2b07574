package statistics

import (
	"fmt"
	"math"
	"sort"
)

// TournamentResult represents the outcome of a single simulated tournament
type TournamentResult struct {
	Seed   int64  // RNG seed for this tournament (for replay)
	Winner string // Empty if nobody reached the threshold
	Rounds int    // Rounds played, ties and no-winner rounds included
	// Undecided counts rounds that credited nobody
	Undecided int
}

// CompetitorStats tracks results for one competitor
type CompetitorStats struct {
	Tournaments int
	Wins        int
}

// Statistics aggregates simulated tournaments
type Statistics struct {
	Tournaments int
	SumRounds   float64
	SumRounds2  float64   // Sum of squares for variance calculation
	Values      []float64 // Rounds per tournament for median/percentile calculation

	Undecided   int // Rounds that credited nobody, across all tournaments
	AllRounds   int // Total rounds for sanity check
	Unfinished  int // Tournaments without a winner
	MaxRounds   int
	Competitors map[string]*CompetitorStats
	order       []string
}

// Register declares the competitors so that ones that never win still show up, in seat order
func (s *Statistics) Register(ids ...string) {
	if s.Competitors == nil {
		s.Competitors = make(map[string]*CompetitorStats)
	}
	for _, id := range ids {
		if _, ok := s.Competitors[id]; !ok {
			s.Competitors[id] = &CompetitorStats{}
			s.order = append(s.order, id)
		}
	}
}

// Order returns competitor ids in registration order
func (s *Statistics) Order() []string {
	return append([]string(nil), s.order...)
}

// Add incorporates a tournament result
func (s *Statistics) Add(result TournamentResult) {
	rounds := float64(result.Rounds)
	s.Tournaments++
	s.SumRounds += rounds
	s.SumRounds2 += rounds * rounds
	s.Values = append(s.Values, rounds)
	s.AllRounds += result.Rounds
	s.Undecided += result.Undecided
	if result.Rounds > s.MaxRounds {
		s.MaxRounds = result.Rounds
	}

	for _, c := range s.Competitors {
		c.Tournaments++
	}
	if result.Winner == "" {
		s.Unfinished++
		return
	}
	s.Register(result.Winner)
	s.Competitors[result.Winner].Wins++
}

// Mean returns the mean number of rounds per tournament
func (s *Statistics) Mean() float64 {
	if s.Tournaments == 0 {
		return 0
	}
	return s.SumRounds / float64(s.Tournaments)
}

// Variance returns the sample variance of rounds per tournament
func (s *Statistics) Variance() float64 {
	if s.Tournaments < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumRounds2 - float64(s.Tournaments)*mean*mean) / float64(s.Tournaments-1)
}

// StdDev returns the sample standard deviation of rounds per tournament
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Tournaments == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Tournaments))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median number of rounds
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the share of tournaments id won
func (s *Statistics) WinRate(id string) float64 {
	c, ok := s.Competitors[id]
	if !ok || c.Tournaments == 0 {
		return 0
	}
	return float64(c.Wins) / float64(c.Tournaments)
}

// Validate performs consistency checks on the aggregate
func (s *Statistics) Validate() error {
	if s.Tournaments <= 0 {
		return fmt.Errorf("invalid tournament count: %d", s.Tournaments)
	}

	if len(s.Values) != s.Tournaments {
		return fmt.Errorf("values array length (%d) does not match tournament count (%d)",
			len(s.Values), s.Tournaments)
	}

	if int(s.SumRounds) != s.AllRounds {
		return fmt.Errorf("round ledger mismatch: sum=%.0f all=%d", s.SumRounds, s.AllRounds)
	}

	wins := 0
	for _, c := range s.Competitors {
		wins += c.Wins
	}
	if wins+s.Unfinished != s.Tournaments {
		return fmt.Errorf("wins (%d) plus unfinished (%d) do not match tournaments (%d)",
			wins, s.Unfinished, s.Tournaments)
	}

	if s.Undecided > s.AllRounds {
		return fmt.Errorf("undecided rounds (%d) exceed total rounds (%d)", s.Undecided, s.AllRounds)
	}
	return nil
}
