package services

import (
	"sort"

	"sukuu-backend/app/models"
)

// LetterCount is one row of a letter-frequency distribution.
type LetterCount struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

// SubjectAverage is the mean of a subject's non-null marks.
type SubjectAverage struct {
	SubjectID   string  `json:"subject_id"`
	SubjectName string  `json:"subject_name"`
	Average     float64 `json:"average"`
}

// Distribution summarises a set of grade records.
type Distribution struct {
	Average    float64          `json:"average"`
	LetterDist []LetterCount    `json:"letterDist"`
	Subjects   []SubjectAverage `json:"subjects"`
}

// AggregateDistribution folds grade records into an overall average of non-null
// marks, a letter-frequency table sorted by descending count, and per-subject
// averages. Records without a subject still count toward the overall average
// but are excluded from the per-subject breakdown.
func AggregateDistribution(records []*models.GradeRecord) Distribution {
	var total float64
	var counted int
	letters := map[string]int{}

	type subjectAcc struct {
		name  string
		total float64
		count int
	}
	subjects := map[string]*subjectAcc{}

	for _, rec := range records {
		if rec.GradeLetter != nil {
			letters[*rec.GradeLetter]++
		}
		if rec.MarksObtained == nil {
			continue
		}
		total += *rec.MarksObtained
		counted++

		if rec.SubjectID == nil {
			continue
		}
		acc := subjects[*rec.SubjectID]
		if acc == nil {
			acc = &subjectAcc{}
			if rec.Subject != nil {
				acc.name = rec.Subject.Name
			}
			subjects[*rec.SubjectID] = acc
		}
		acc.total += *rec.MarksObtained
		acc.count++
	}

	dist := Distribution{}
	if counted > 0 {
		dist.Average = total / float64(counted)
	}

	for letter, count := range letters {
		dist.LetterDist = append(dist.LetterDist, LetterCount{Letter: letter, Count: count})
	}
	sort.Slice(dist.LetterDist, func(i, j int) bool {
		if dist.LetterDist[i].Count != dist.LetterDist[j].Count {
			return dist.LetterDist[i].Count > dist.LetterDist[j].Count
		}
		return dist.LetterDist[i].Letter < dist.LetterDist[j].Letter
	})

	for id, acc := range subjects {
		dist.Subjects = append(dist.Subjects, SubjectAverage{
			SubjectID:   id,
			SubjectName: acc.name,
			Average:     acc.total / float64(acc.count),
		})
	}
	sort.Slice(dist.Subjects, func(i, j int) bool {
		return dist.Subjects[i].SubjectID < dist.Subjects[j].SubjectID
	})

	return dist
}

// SubjectSeries is one subject's chronologically ordered score history with x
// re-indexed as 1, 2, 3, ... so calendar gaps between assessments do not
// distort a fitted trend.
type SubjectSeries struct {
	SubjectID   string        `json:"subject_id"`
	SubjectName string        `json:"subject_name"`
	Points      []SeriesPoint `json:"points"`
}

// BuildSubjectSeries groups a student's grade history by subject, drops records
// with a null mark, orders each group by creation time ascending and assigns
// 1-based sequence indices.
func BuildSubjectSeries(records []*models.GradeRecord) []SubjectSeries {
	groups := map[string][]*models.GradeRecord{}
	names := map[string]string{}

	for _, rec := range records {
		if rec.MarksObtained == nil || rec.SubjectID == nil {
			continue
		}
		groups[*rec.SubjectID] = append(groups[*rec.SubjectID], rec)
		if rec.Subject != nil {
			names[*rec.SubjectID] = rec.Subject.Name
		}
	}

	series := make([]SubjectSeries, 0, len(groups))
	for subjectID, recs := range groups {
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].CreatedAt.Before(recs[j].CreatedAt)
		})

		points := make([]SeriesPoint, len(recs))
		for i, rec := range recs {
			points[i] = SeriesPoint{X: float64(i + 1), Y: *rec.MarksObtained}
		}
		series = append(series, SubjectSeries{
			SubjectID:   subjectID,
			SubjectName: names[subjectID],
			Points:      points,
		})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].SubjectID < series[j].SubjectID
	})
	return series
}

// movingAverageWindow is the trailing window used when regression cannot
// produce a finite prediction.
const movingAverageWindow = 3

// SubjectPrediction is the predicted next mark for one subject.
type SubjectPrediction struct {
	SubjectID         string   `json:"subject_id"`
	SubjectName       string   `json:"subject_name"`
	PredictedNextMark *float64 `json:"predicted_next_mark"`
}

// CompilePredictions produces one predicted next mark per subject series: the
// regression value at the next index, falling back to the trailing moving
// average when that is not finite, and null when neither is available.
func CompilePredictions(series []SubjectSeries) []SubjectPrediction {
	predictions := make([]SubjectPrediction, 0, len(series))
	for _, s := range series {
		pred := SubjectPrediction{SubjectID: s.SubjectID, SubjectName: s.SubjectName}

		line := FitRegression(s.Points)
		next := line.PredictAt(float64(len(s.Points) + 1))
		if isFinite(next) && len(s.Points) > 0 {
			pred.PredictedNextMark = &next
		} else {
			pred.PredictedNextMark = MovingAverage(s.Points, movingAverageWindow)
		}

		predictions = append(predictions, pred)
	}
	return predictions
}
