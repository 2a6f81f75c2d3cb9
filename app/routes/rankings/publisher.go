package rankings

import (
	"fmt"
	"time"

	"sukuu-backend/app/models"
	"sukuu-backend/app/services"

	"github.com/google/uuid"
)

// Cohort identifies the (section, term, academic year) scope a ranking is
// computed for within one school.
type Cohort struct {
	SchoolID       string
	SectionID      string
	TermID         string
	AcademicYearID string
}

// SnapshotTx is the per-row surface available inside one snapshot transaction.
// GetSnapshot returns (nil, nil) when no row exists for the key.
type SnapshotTx interface {
	GetSnapshot(sectionID, termID, studentID string) (*models.RankingSnapshot, error)
	PutSnapshot(snap *models.RankingSnapshot) error
}

// SnapshotStore runs fn inside a single atomic transaction: every snapshot
// written for one cohort recompute becomes visible together or not at all.
type SnapshotStore interface {
	InTransaction(fn func(tx SnapshotTx) error) error
}

// PublishSnapshots upserts one snapshot per standing, keyed by
// (section, term, student). Inserts take published from the publish argument;
// updates refresh every computed field unconditionally but only ever raise the
// published flag: an existing true is never reset by a publish=false recompute.
// Returns the number of students processed.
func PublishSnapshots(store SnapshotStore, cohort Cohort, standings []services.StudentStanding, publish bool, now time.Time) (int, error) {
	count := 0
	err := store.InTransaction(func(tx SnapshotTx) error {
		for _, standing := range standings {
			existing, err := tx.GetSnapshot(cohort.SectionID, cohort.TermID, standing.StudentID)
			if err != nil {
				return fmt.Errorf("failed to load snapshot for student %s: %w", standing.StudentID, err)
			}

			snap := &models.RankingSnapshot{
				SchoolID:       cohort.SchoolID,
				SectionID:      cohort.SectionID,
				TermID:         cohort.TermID,
				AcademicYearID: cohort.AcademicYearID,
				StudentID:      standing.StudentID,
				TotalScore:     standing.TotalScore,
				Average:        standing.Average,
				TotalSubjects:  standing.TotalSubjects,
				Position:       standing.Position,
				ComputedAt:     now,
				Published:      publish,
			}
			if existing != nil {
				snap.ID = existing.ID
				snap.Published = existing.Published || publish
			} else {
				snap.ID = uuid.New().String()
			}

			if err := tx.PutSnapshot(snap); err != nil {
				return fmt.Errorf("failed to save snapshot for student %s: %w", standing.StudentID, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
