package services

import (
	"testing"
	"time"

	"sukuu-backend/app/models"
)

func subjectRec(subjectID, name string, marks *float64, letter *string, createdAt time.Time) *models.GradeRecord {
	rec := &models.GradeRecord{
		StudentID:     "s1",
		MarksObtained: marks,
		GradeLetter:   letter,
		CreatedAt:     createdAt,
	}
	if subjectID != "" {
		rec.SubjectID = &subjectID
		rec.Subject = &models.Subject{ID: subjectID, Name: name}
	}
	return rec
}

func TestAggregateDistribution(t *testing.T) {
	now := time.Now()
	records := []*models.GradeRecord{
		subjectRec("sub-math", "Mathematics", fptr(80), sptr("A"), now),
		subjectRec("sub-math", "Mathematics", fptr(60), sptr("C"), now),
		subjectRec("sub-eng", "English", fptr(70), sptr("B"), now),
		subjectRec("sub-eng", "English", nil, nil, now),   // null mark
		subjectRec("", "", fptr(90), sptr("A"), now),      // no subject
	}

	dist := AggregateDistribution(records)

	if want := (80.0 + 60 + 70 + 90) / 4; dist.Average != want {
		t.Errorf("Average = %v, want %v", dist.Average, want)
	}
	if len(dist.LetterDist) != 3 {
		t.Fatalf("got %d letters, want 3", len(dist.LetterDist))
	}
	if dist.LetterDist[0].Letter != "A" || dist.LetterDist[0].Count != 2 {
		t.Errorf("top letter = %+v, want A x2", dist.LetterDist[0])
	}
	if len(dist.Subjects) != 2 {
		t.Fatalf("got %d subjects, want 2 (record without subject excluded)", len(dist.Subjects))
	}
	for _, s := range dist.Subjects {
		switch s.SubjectID {
		case "sub-math":
			if s.Average != 70 {
				t.Errorf("math average = %v, want 70", s.Average)
			}
		case "sub-eng":
			if s.Average != 70 {
				t.Errorf("english average = %v (null mark must be excluded), want 70", s.Average)
			}
		}
	}
}

func TestAggregateDistributionEmpty(t *testing.T) {
	dist := AggregateDistribution(nil)
	if dist.Average != 0 || len(dist.LetterDist) != 0 || len(dist.Subjects) != 0 {
		t.Errorf("empty input should aggregate to zero values, got %+v", dist)
	}
}

func TestBuildSubjectSeries(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []*models.GradeRecord{
		// out of chronological order, with a long calendar gap
		subjectRec("sub-math", "Mathematics", fptr(70), nil, base.AddDate(0, 4, 0)),
		subjectRec("sub-math", "Mathematics", fptr(60), nil, base),
		subjectRec("sub-math", "Mathematics", fptr(65), nil, base.AddDate(0, 0, 7)),
		subjectRec("sub-math", "Mathematics", nil, nil, base.AddDate(0, 1, 0)), // dropped
		subjectRec("sub-eng", "English", fptr(55), nil, base),
	}

	series := BuildSubjectSeries(records)

	if len(series) != 2 {
		t.Fatalf("got %d series, want 2", len(series))
	}
	math := series[1] // sorted by subject id: sub-eng, sub-math
	if math.SubjectID != "sub-math" {
		t.Fatalf("series order unexpected: %v", []string{series[0].SubjectID, series[1].SubjectID})
	}
	wantY := []float64{60, 65, 70}
	if len(math.Points) != len(wantY) {
		t.Fatalf("got %d points, want %d", len(math.Points), len(wantY))
	}
	for i, p := range math.Points {
		if p.X != float64(i+1) {
			t.Errorf("point %d re-indexed X = %v, want %v", i, p.X, i+1)
		}
		if p.Y != wantY[i] {
			t.Errorf("point %d Y = %v, want %v", i, p.Y, wantY[i])
		}
	}
}

func TestCompilePredictions(t *testing.T) {
	series := []SubjectSeries{
		{
			SubjectID:   "sub-math",
			SubjectName: "Mathematics",
			Points: []SeriesPoint{
				{X: 1, Y: 60}, {X: 2, Y: 65}, {X: 3, Y: 70}, {X: 4, Y: 75},
			},
		},
		{
			SubjectID:   "sub-eng",
			SubjectName: "English",
			Points:      []SeriesPoint{{X: 1, Y: 82}},
		},
		{
			SubjectID: "sub-art",
		},
	}

	predictions := CompilePredictions(series)

	if len(predictions) != 3 {
		t.Fatalf("got %d predictions, want 3", len(predictions))
	}
	if p := predictions[0].PredictedNextMark; p == nil || !almostEqual(*p, 80) {
		t.Errorf("regression prediction = %v, want 80", p)
	}
	if p := predictions[1].PredictedNextMark; p == nil || !almostEqual(*p, 82) {
		t.Errorf("single-point prediction = %v, want 82", p)
	}
	if p := predictions[2].PredictedNextMark; p != nil {
		t.Errorf("empty series prediction = %v, want nil", *p)
	}
}
