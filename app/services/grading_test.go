package services

import (
	"testing"

	"sukuu-backend/app/models"
)

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }

func standardBands() []*models.GradeBand {
	return []*models.GradeBand{
		{Grade: "F", MinPercentage: 0, MaxPercentage: fptr(49.99)},
		{Grade: "A", MinPercentage: 80},
		{Grade: "B", MinPercentage: 65, MaxPercentage: fptr(79.99)},
		{Grade: "C", MinPercentage: 50, MaxPercentage: fptr(64.99)},
	}
}

func TestMapGradeLetter(t *testing.T) {
	tests := []struct {
		name  string
		mark  *float64
		bands []*models.GradeBand
		want  *string
	}{
		{name: "nil mark", mark: nil, bands: standardBands(), want: nil},
		{name: "empty bands", mark: fptr(75), bands: nil, want: nil},
		{name: "top band, max defaults to 100", mark: fptr(100), bands: standardBands(), want: sptr("A")},
		{name: "band lower bound inclusive", mark: fptr(65), bands: standardBands(), want: sptr("B")},
		{name: "band upper bound inclusive", mark: fptr(64.99), bands: standardBands(), want: sptr("C")},
		{name: "failing band", mark: fptr(12), bands: standardBands(), want: sptr("F")},
		{name: "unmatched mark returns nil", mark: fptr(120), bands: standardBands(), want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapGradeLetter(tt.mark, tt.bands)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("MapGradeLetter() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("MapGradeLetter() = %q, want %q", *got, *tt.want)
			}
		})
	}
}

func TestMapGradeLetterMatchedBandContainsMark(t *testing.T) {
	bands := standardBands()
	for mark := 0.0; mark <= 100; mark += 0.5 {
		m := mark
		letter := MapGradeLetter(&m, bands)
		if letter == nil {
			t.Fatalf("mark %v matched no band", mark)
		}
		for _, b := range bands {
			if b.Grade != *letter {
				continue
			}
			max := 100.0
			if b.MaxPercentage != nil {
				max = *b.MaxPercentage
			}
			if m < b.MinPercentage || m > max {
				t.Errorf("mark %v mapped to %q outside [%v, %v]", m, *letter, b.MinPercentage, max)
			}
		}
	}
}

func scaleWith(bands ...*models.GradeBand) *models.GradingScale {
	return &models.GradingScale{ID: "scale-1", Bands: bands}
}

func TestResolvePassThreshold(t *testing.T) {
	year := "year-1"
	classID := "class-1"
	subjectID := "subject-1"

	tests := []struct {
		name    string
		configs []*models.WeightConfig
		scope   ThresholdScope
		want    float64
	}{
		{
			name:  "no matching config defaults to 50",
			scope: ThresholdScope{AcademicYearID: year},
			want:  DefaultPassThreshold,
		},
		{
			name: "config without scale defaults to 50",
			configs: []*models.WeightConfig{
				{AcademicYearID: year, IsDefault: true},
			},
			scope: ThresholdScope{AcademicYearID: year},
			want:  DefaultPassThreshold,
		},
		{
			name: "no passing bands defaults to 50",
			configs: []*models.WeightConfig{
				{AcademicYearID: year, GradingScale: scaleWith(
					&models.GradeBand{Grade: "F", MinPercentage: 0},
				)},
			},
			scope: ThresholdScope{AcademicYearID: year},
			want:  DefaultPassThreshold,
		},
		{
			name: "minimum passing band min wins",
			configs: []*models.WeightConfig{
				{AcademicYearID: year, GradingScale: scaleWith(
					&models.GradeBand{Grade: "A", MinPercentage: 80},
					&models.GradeBand{Grade: "B", MinPercentage: 65},
					&models.GradeBand{Grade: "Pass", MinPercentage: 40},
					&models.GradeBand{Grade: "F", MinPercentage: 0},
				)},
			},
			scope: ThresholdScope{AcademicYearID: year},
			want:  40,
		},
		{
			name: "lowercase passing label qualifies",
			configs: []*models.WeightConfig{
				{AcademicYearID: year, GradingScale: scaleWith(
					&models.GradeBand{Grade: "credit", MinPercentage: 45},
				)},
			},
			scope: ThresholdScope{AcademicYearID: year},
			want:  45,
		},
		{
			name: "subject-scoped config beats year default",
			configs: []*models.WeightConfig{
				{AcademicYearID: year, IsDefault: true, GradingScale: scaleWith(
					&models.GradeBand{Grade: "C", MinPercentage: 50},
				)},
				{AcademicYearID: year, ClassID: &classID, SubjectID: &subjectID, GradingScale: scaleWith(
					&models.GradeBand{Grade: "C", MinPercentage: 55},
				)},
			},
			scope: ThresholdScope{AcademicYearID: year, ClassID: &classID, SubjectID: &subjectID},
			want:  55,
		},
		{
			name: "class-scoped config ignored for other class",
			configs: []*models.WeightConfig{
				{AcademicYearID: year, ClassID: sptr("class-9"), GradingScale: scaleWith(
					&models.GradeBand{Grade: "C", MinPercentage: 60},
				)},
			},
			scope: ThresholdScope{AcademicYearID: year, ClassID: &classID},
			want:  DefaultPassThreshold,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePassThreshold(tt.configs, tt.scope); got != tt.want {
				t.Errorf("ResolvePassThreshold() = %v, want %v", got, tt.want)
			}
		})
	}
}
