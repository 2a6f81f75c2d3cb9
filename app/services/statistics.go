package services

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// SeriesPoint is one observation in a subject's score history. X is a 1-based
// sequence index rather than a timestamp so regression treats observations as
// evenly spaced regardless of calendar gaps between assessments.
type SeriesPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RegressionLine is a fitted least-squares line.
type RegressionLine struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// FitRegression fits a least-squares line over the points. With fewer than two
// points it degrades to a constant predictor at the last known y (or 0 with no
// points). A degenerate fit (all x equal) yields a flat line at the mean.
func FitRegression(points []SeriesPoint) RegressionLine {
	if len(points) == 0 {
		return RegressionLine{}
	}
	if len(points) == 1 {
		return RegressionLine{Slope: 0, Intercept: points[0].Y}
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return RegressionLine{Slope: 0, Intercept: stat.Mean(ys, nil)}
	}
	return RegressionLine{Slope: slope, Intercept: intercept}
}

// PredictAt evaluates the fitted line at x.
func (r RegressionLine) PredictAt(x float64) float64 {
	return r.Intercept + r.Slope*x
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// MovingAverage returns the average of the last window points' y values.
// Fewer than window points averages whatever is available; no points returns nil.
func MovingAverage(points []SeriesPoint, window int) *float64 {
	if len(points) == 0 || window <= 0 {
		return nil
	}
	start := len(points) - window
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for _, p := range points[start:] {
		sum += p.Y
	}
	avg := sum / float64(len(points)-start)
	return &avg
}
