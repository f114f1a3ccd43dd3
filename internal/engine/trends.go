package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// TrendPoint is one dated observation in a series under analysis.
type TrendPoint struct {
	DateKey string  `json:"dateKey"`
	Value   float64 `json:"value"`
}

// Trend summarizes a dated series: descriptive statistics plus a
// least-squares slope in value units per day.
type Trend struct {
	Count       int     `json:"count"`
	Mean        float64 `json:"mean"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	StdDev      float64 `json:"stdDev"`
	SlopePerDay float64 `json:"slopePerDay"`
	Delta       float64 `json:"delta"`
}

// Session series metrics accepted by SessionSeries.
const (
	Metric1RM    = "1rm"
	MetricVolume = "volume"
)

// AnalyzeTrend computes a Trend over the given points. Fewer than two points
// is an error; a series confined to a single day has slope 0.
func AnalyzeTrend(points []TrendPoint) (*Trend, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("trend needs at least 2 points, got %d", len(points))
	}

	ordered := append([]TrendPoint(nil), points...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DateKey < ordered[j].DateKey
	})

	first, err := time.Parse(dateKeyLayout, ordered[0].DateKey)
	if err != nil {
		return nil, fmt.Errorf("parsing dateKey %q: %w", ordered[0].DateKey, err)
	}

	xs := make([]float64, len(ordered))
	ys := make([]float64, len(ordered))
	for i, p := range ordered {
		day, err := time.Parse(dateKeyLayout, p.DateKey)
		if err != nil {
			return nil, fmt.Errorf("parsing dateKey %q: %w", p.DateKey, err)
		}
		xs[i] = day.Sub(first).Hours() / 24
		ys[i] = p.Value
	}

	mean, _ := stats.Mean(ys)
	minV, _ := stats.Min(ys)
	maxV, _ := stats.Max(ys)
	sd, _ := stats.StandardDeviation(ys)

	var slope float64
	if xs[len(xs)-1] > 0 {
		_, slope = stat.LinearRegression(xs, ys, nil, false)
	}

	return &Trend{
		Count:       len(ordered),
		Mean:        mean,
		Min:         minV,
		Max:         maxV,
		StdDev:      sd,
		SlopePerDay: slope,
		Delta:       ys[len(ys)-1] - ys[0],
	}, nil
}

// SessionSeries extracts a per-session series for an exercise, one point per
// training day: the session's best estimated 1RM or its total volume.
func SessionSeries(sessions []Session, exercise, metric string) []TrendPoint {
	var out []TrendPoint
	for _, s := range sessions {
		if s.Exercise != exercise {
			continue
		}
		p := TrendPoint{DateKey: s.DateKey}
		switch metric {
		case MetricVolume:
			p.Value = s.Volume
		default:
			p.Value = s.Best1RM
		}
		out = append(out, p)
	}
	return out
}

// BodySeries converts a body-composition series to trend points.
func BodySeries(entries []BodyEntry) []TrendPoint {
	out := make([]TrendPoint, 0, len(entries))
	for _, e := range entries {
		out = append(out, TrendPoint{DateKey: e.DateKey, Value: e.Value})
	}
	return out
}
