package catalog

import (
	"time"

	"github.com/ardentql/qxform/internal/sql/types"
)

// TableStats holds table-level statistics.
type TableStats struct {
	RowCount     int64
	PageCount    int64
	AvgRowSize   int
	LastAnalyzed time.Time
}

// ColumnStats holds column-level statistics.
type ColumnStats struct {
	NullCount     int64
	DistinctCount int64
	AvgWidth      int
	MinValue      types.Value
	MaxValue      types.Value
	Histogram     *Histogram
	LastAnalyzed  time.Time
}

// Histogram represents the distribution of values in a column.
type Histogram struct {
	Type    HistogramType
	Buckets []HistogramBucket
}

// HistogramType represents the type of histogram.
type HistogramType int

const (
	// EquiHeightHistogram has buckets with equal number of rows.
	EquiHeightHistogram HistogramType = iota
	// EquiWidthHistogram has buckets with equal value ranges.
	EquiWidthHistogram
)

// HistogramBucket represents a single bucket in a histogram.
type HistogramBucket struct {
	LowerBound    types.Value
	UpperBound    types.Value
	Frequency     int64
	DistinctCount int64
}
