package services

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFitRegression(t *testing.T) {
	tests := []struct {
		name          string
		points        []SeriesPoint
		wantSlope     float64
		wantIntercept float64
	}{
		{name: "no points", points: nil, wantSlope: 0, wantIntercept: 0},
		{
			name:          "single point degrades to constant",
			points:        []SeriesPoint{{X: 1, Y: 82}},
			wantSlope:     0,
			wantIntercept: 82,
		},
		{
			name: "steady rise",
			points: []SeriesPoint{
				{X: 1, Y: 60}, {X: 2, Y: 65}, {X: 3, Y: 70}, {X: 4, Y: 75},
			},
			wantSlope:     5,
			wantIntercept: 55,
		},
		{
			name:          "degenerate spacing flattens to mean",
			points:        []SeriesPoint{{X: 2, Y: 40}, {X: 2, Y: 60}},
			wantSlope:     0,
			wantIntercept: 50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := FitRegression(tt.points)
			if !almostEqual(line.Slope, tt.wantSlope) {
				t.Errorf("Slope = %v, want %v", line.Slope, tt.wantSlope)
			}
			if !almostEqual(line.Intercept, tt.wantIntercept) {
				t.Errorf("Intercept = %v, want %v", line.Intercept, tt.wantIntercept)
			}
		})
	}
}

func TestPredictAt(t *testing.T) {
	points := []SeriesPoint{
		{X: 1, Y: 60}, {X: 2, Y: 65}, {X: 3, Y: 70}, {X: 4, Y: 75},
	}
	line := FitRegression(points)
	if got := line.PredictAt(5); !almostEqual(got, 80) {
		t.Errorf("PredictAt(5) = %v, want 80", got)
	}
}

func TestMovingAverage(t *testing.T) {
	tests := []struct {
		name   string
		points []SeriesPoint
		window int
		want   *float64
	}{
		{name: "no points", points: nil, window: 3, want: nil},
		{
			name:   "fewer points than window",
			points: []SeriesPoint{{X: 1, Y: 82}},
			window: 3,
			want:   fptr(82),
		},
		{
			name: "last three of five",
			points: []SeriesPoint{
				{X: 1, Y: 10}, {X: 2, Y: 20}, {X: 3, Y: 30}, {X: 4, Y: 60}, {X: 5, Y: 90},
			},
			window: 3,
			want:   fptr(60),
		},
		{
			name:   "zero window",
			points: []SeriesPoint{{X: 1, Y: 50}},
			window: 0,
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MovingAverage(tt.points, tt.window)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("MovingAverage() = %v, want %v", got, tt.want)
			}
			if got != nil && !almostEqual(*got, *tt.want) {
				t.Errorf("MovingAverage() = %v, want %v", *got, *tt.want)
			}
		})
	}
}
