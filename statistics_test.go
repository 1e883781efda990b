package accelbench

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccuracy(t *testing.T) {
	s := Statistics{TotalCount: 100, Misclassified: 13}
	assert.InDelta(t, 0.87, s.Accuracy(), 1e-6)
	assert.Equal(t, "0.87", fmt.Sprintf("%.2f", s.Accuracy()))
}

func TestThroughput(t *testing.T) {
	s := Statistics{TotalCount: 50, TotalSeconds: 25}
	assert.Equal(t, float32(2), s.Throughput())
	assert.Equal(t, "2.00", fmt.Sprintf("%.2f", s.Throughput()))
}

func TestEmptyStatistics(t *testing.T) {
	s := makeStatistics()
	assert.Zero(t, s.Accuracy())
	assert.Zero(t, s.Throughput())
}

func TestUpdate(t *testing.T) {
	s := makeStatistics()
	s.update(Result{Index: 0, Expected: 1, Actual: 1, Seconds: 0.5})
	s.update(Result{Index: 1, Expected: 1, Actual: 2, Seconds: 0.25})
	s.update(Result{Index: 2, Expected: 4, Actual: NoClass, Seconds: 0.25})
	assert.Equal(t, 3, s.TotalCount)
	assert.Equal(t, 2, s.Misclassified)
	assert.Equal(t, float32(1), s.TotalSeconds)
	assert.Len(t, s.Results, 3)
}

func TestDump(t *testing.T) {
	s := makeStatistics()
	s.update(Result{Index: 0, Expected: 3, Actual: 3, Seconds: 0.5})
	s.update(Result{Index: 1, Expected: 3, Actual: 5, Seconds: 0.25})

	filename := filepath.Join(t.TempDir(), "stats.csv")
	require.NoError(t, s.Dump(filename))

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	want := [][]string{
		{"index", "expected", "actual", "seconds"},
		{"0", "3", "3", "0.500000"},
		{"1", "3", "5", "0.250000"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}
