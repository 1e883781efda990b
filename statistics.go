package accelbench

import (
	"encoding/csv"
	"os"
	"strconv"
)

// Result is the outcome of one record.
type Result struct {
	Index    int
	Expected int
	Actual   int
	Seconds  float32
}

// Statistics accumulate over a run. Every field only ever grows.
type Statistics struct {
	TotalCount    int
	Misclassified int
	TotalSeconds  float32 // accelerator run time only

	Results []Result
}

func makeStatistics() Statistics {
	return Statistics{
		Results: make([]Result, 0, 64),
	}
}

func (s *Statistics) update(r Result) {
	s.TotalCount++
	if r.Actual != r.Expected {
		s.Misclassified++
	}
	s.TotalSeconds += r.Seconds
	s.Results = append(s.Results, r)
}

// Accuracy is the fraction of correctly classified records. It is 0 before
// any record is processed.
func (s *Statistics) Accuracy() float32 {
	if s.TotalCount == 0 {
		return 0
	}
	return 1 - float32(s.Misclassified)/float32(s.TotalCount)
}

// Throughput is the number of records per second of accelerator run time. It
// is 0 when no time was measured.
func (s *Statistics) Throughput() float32 {
	if s.TotalSeconds == 0 {
		return 0
	}
	return float32(s.TotalCount) / s.TotalSeconds
}

// Dump writes the per-record results as CSV.
func (s *Statistics) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "expected", "actual", "seconds"}); err != nil {
		return err
	}
	records := make([][]string, 0, len(s.Results))
	for _, r := range s.Results {
		records = append(records, []string{
			strconv.Itoa(r.Index),
			strconv.Itoa(r.Expected),
			strconv.Itoa(r.Actual),
			strconv.FormatFloat(float64(r.Seconds), 'f', 6, 32),
		})
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}
	return f.Close()
}
