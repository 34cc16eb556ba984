package statistics

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"seed", "playable", "best_hand", "status", "score", "plays"}

// WriteCSV writes one row per deal, in seed order, after a header row
func (s *Summary) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range s.Results {
		best := r.BestHand.String()
		if !r.HasOpening() {
			best = ""
		}
		row := []string{
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Playable),
			best,
			r.Status.String(),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Plays),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
