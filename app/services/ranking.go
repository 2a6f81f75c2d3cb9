package services

import (
	"sort"

	"sukuu-backend/app/models"
)

// StudentStanding is one student's aggregate within a cohort ranking.
type StudentStanding struct {
	StudentID     string  `json:"student_id"`
	TotalScore    float64 `json:"total_score"`
	Average       float64 `json:"average"`
	TotalSubjects int     `json:"total_subjects"`
	Position      int     `json:"position"`
}

// ComputeSectionRanking aggregates all grade records of one (section, term,
// academic year) cohort into per-student totals and assigns competition-ranked
// positions.
//
// Ordering is total desc, then average desc, then student id asc; the id
// tiebreak makes the sequence a strict total order, so recomputation over
// identical input yields an identical sequence. Positions follow competition
// ranking as computed here: a repeated (total, average) key copies the prior
// entry's position, a new key takes index+1. Tied students therefore share a
// position and the group size does not consume rank slots: totals
// [180, 150, 150] rank [1, 2, 2] and a fourth student below ranks 4.
func ComputeSectionRanking(records []*models.GradeRecord) []StudentStanding {
	totals := map[string]*StudentStanding{}

	for _, rec := range records {
		if rec.MarksObtained == nil {
			continue
		}
		st := totals[rec.StudentID]
		if st == nil {
			st = &StudentStanding{StudentID: rec.StudentID}
			totals[rec.StudentID] = st
		}
		st.TotalScore += *rec.MarksObtained
		st.TotalSubjects++
	}

	standings := make([]StudentStanding, 0, len(totals))
	for _, st := range totals {
		if st.TotalSubjects > 0 {
			st.Average = st.TotalScore / float64(st.TotalSubjects)
		}
		standings = append(standings, *st)
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].TotalScore != standings[j].TotalScore {
			return standings[i].TotalScore > standings[j].TotalScore
		}
		if standings[i].Average != standings[j].Average {
			return standings[i].Average > standings[j].Average
		}
		return standings[i].StudentID < standings[j].StudentID
	})

	for i := range standings {
		if i > 0 &&
			standings[i].TotalScore == standings[i-1].TotalScore &&
			standings[i].Average == standings[i-1].Average {
			standings[i].Position = standings[i-1].Position
			continue
		}
		standings[i].Position = i + 1
	}

	return standings
}
