package simulator

import (
	"encoding/json"
	"io"

	"github.com/lox/parlour/internal/fileutil"
	"github.com/lox/parlour/internal/statistics"
)

// Report is the machine-readable summary of a simulation run.
type Report struct {
	Game            string         `json:"game"`
	Seed            int64          `json:"seed"`
	Tournaments     int            `json:"tournaments"`
	MeanRounds      float64        `json:"mean_rounds"`
	MedianRounds    float64        `json:"median_rounds"`
	StdDevRounds    float64        `json:"stddev_rounds"`
	CI95            [2]float64     `json:"ci95_rounds"`
	MaxRounds       int            `json:"max_rounds"`
	UndecidedRounds int            `json:"undecided_rounds"`
	Wins            map[string]int `json:"wins"`
}

// NewReport condenses stats for a run of game started from seed.
func NewReport(stats *statistics.Statistics, game string, seed int64) Report {
	low, high := stats.ConfidenceInterval95()
	r := Report{
		Game:            game,
		Seed:            seed,
		Tournaments:     stats.Tournaments,
		MeanRounds:      stats.Mean(),
		MedianRounds:    stats.Median(),
		StdDevRounds:    stats.StdDev(),
		CI95:            [2]float64{low, high},
		MaxRounds:       stats.MaxRounds,
		UndecidedRounds: stats.Undecided,
		Wins:            make(map[string]int, len(stats.Competitors)),
	}
	for _, id := range stats.Order() {
		r.Wins[id] = stats.Competitors[id].Wins
	}
	return r
}

// WriteReport replaces the file at path with r as indented JSON.
func WriteReport(path string, r Report) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	})
}
