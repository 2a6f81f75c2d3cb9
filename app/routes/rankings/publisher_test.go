package rankings

import (
	"fmt"
	"testing"
	"time"

	"sukuu-backend/app/models"
	"sukuu-backend/app/services"
)

/* ---------------- In-memory fake satisfying SnapshotStore ---------------- */

type fakeSnapshotStore struct {
	rows    map[string]models.RankingSnapshot // key: section|term|student
	failPut bool
}

func newFakeSnapshotStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{rows: map[string]models.RankingSnapshot{}}
}

func snapKey(sectionID, termID, studentID string) string {
	return fmt.Sprintf("%s|%s|%s", sectionID, termID, studentID)
}

type fakeSnapshotTx struct {
	store   *fakeSnapshotStore
	pending map[string]models.RankingSnapshot
}

func (s *fakeSnapshotStore) InTransaction(fn func(tx SnapshotTx) error) error {
	tx := &fakeSnapshotTx{store: s, pending: map[string]models.RankingSnapshot{}}
	if err := fn(tx); err != nil {
		return err // rollback: pending writes are discarded
	}
	for k, v := range tx.pending {
		s.rows[k] = v
	}
	return nil
}

func (t *fakeSnapshotTx) GetSnapshot(sectionID, termID, studentID string) (*models.RankingSnapshot, error) {
	k := snapKey(sectionID, termID, studentID)
	if snap, ok := t.pending[k]; ok {
		return &snap, nil
	}
	if snap, ok := t.store.rows[k]; ok {
		return &snap, nil
	}
	return nil, nil
}

func (t *fakeSnapshotTx) PutSnapshot(snap *models.RankingSnapshot) error {
	if t.store.failPut {
		return fmt.Errorf("put failed")
	}
	t.pending[snapKey(snap.SectionID, snap.TermID, snap.StudentID)] = *snap
	return nil
}

/* ---------------- Tests ---------------- */

var testCohort = Cohort{
	SchoolID:       "school-1",
	SectionID:      "section-1",
	TermID:         "term-1",
	AcademicYearID: "year-1",
}

func testStandings() []services.StudentStanding {
	return []services.StudentStanding{
		{StudentID: "s1", TotalScore: 180, Average: 60, TotalSubjects: 3, Position: 1},
		{StudentID: "s2", TotalScore: 150, Average: 50, TotalSubjects: 3, Position: 2},
		{StudentID: "s3", TotalScore: 150, Average: 50, TotalSubjects: 3, Position: 2},
	}
}

func TestPublishSnapshotsInsert(t *testing.T) {
	store := newFakeSnapshotStore()
	now := time.Now()

	count, err := PublishSnapshots(store, testCohort, testStandings(), false, now)
	if err != nil {
		t.Fatalf("PublishSnapshots() error = %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	snap := store.rows[snapKey("section-1", "term-1", "s2")]
	if snap.Position != 2 || snap.TotalScore != 150 || snap.TotalSubjects != 3 {
		t.Errorf("stored snapshot = %+v", snap)
	}
	if snap.Published {
		t.Errorf("insert with publish=false must not publish")
	}
	if snap.ID == "" {
		t.Errorf("insert must assign an id")
	}
}

func TestPublishSnapshotsMonotonicPublish(t *testing.T) {
	store := newFakeSnapshotStore()

	if _, err := PublishSnapshots(store, testCohort, testStandings(), true, time.Now()); err != nil {
		t.Fatalf("publish pass error = %v", err)
	}
	for k, snap := range store.rows {
		if !snap.Published {
			t.Fatalf("row %s not published after publish=true", k)
		}
	}

	// recompute without publishing must leave published=true
	if _, err := PublishSnapshots(store, testCohort, testStandings(), false, time.Now()); err != nil {
		t.Fatalf("refresh pass error = %v", err)
	}
	for k, snap := range store.rows {
		if !snap.Published {
			t.Errorf("row %s lost its published flag on publish=false recompute", k)
		}
	}
}

func TestPublishSnapshotsIdempotentRecompute(t *testing.T) {
	store := newFakeSnapshotStore()
	standings := testStandings()

	if _, err := PublishSnapshots(store, testCohort, standings, false, time.Unix(1000, 0)); err != nil {
		t.Fatalf("first pass error = %v", err)
	}
	first := map[string]models.RankingSnapshot{}
	for k, v := range store.rows {
		first[k] = v
	}

	if _, err := PublishSnapshots(store, testCohort, standings, false, time.Unix(2000, 0)); err != nil {
		t.Fatalf("second pass error = %v", err)
	}

	for k, before := range first {
		after := store.rows[k]
		if after.ID != before.ID {
			t.Errorf("row %s changed id across recomputes", k)
		}
		if after.TotalScore != before.TotalScore || after.Average != before.Average ||
			after.TotalSubjects != before.TotalSubjects || after.Position != before.Position {
			t.Errorf("row %s computed fields differ across identical recomputes:\n%+v\n%+v", k, before, after)
		}
		if !after.ComputedAt.After(before.ComputedAt) {
			t.Errorf("row %s ComputedAt not refreshed", k)
		}
	}
}

func TestPublishSnapshotsUpdateRefreshesComputedFields(t *testing.T) {
	store := newFakeSnapshotStore()

	if _, err := PublishSnapshots(store, testCohort, testStandings(), true, time.Now()); err != nil {
		t.Fatalf("seed pass error = %v", err)
	}

	changed := []services.StudentStanding{
		{StudentID: "s1", TotalScore: 120, Average: 40, TotalSubjects: 3, Position: 2},
		{StudentID: "s2", TotalScore: 190, Average: 63.33, TotalSubjects: 3, Position: 1},
	}
	if _, err := PublishSnapshots(store, testCohort, changed, false, time.Now()); err != nil {
		t.Fatalf("update pass error = %v", err)
	}

	s1 := store.rows[snapKey("section-1", "term-1", "s1")]
	if s1.TotalScore != 120 || s1.Position != 2 {
		t.Errorf("update did not refresh computed fields: %+v", s1)
	}
	if !s1.Published {
		t.Errorf("update must keep the published flag")
	}
}

func TestPublishSnapshotsAtomic(t *testing.T) {
	store := newFakeSnapshotStore()
	store.failPut = true

	count, err := PublishSnapshots(store, testCohort, testStandings(), false, time.Now())
	if err == nil {
		t.Fatal("expected error from failing store")
	}
	if count != 0 {
		t.Errorf("count = %d on failure, want 0", count)
	}
	if len(store.rows) != 0 {
		t.Errorf("failed transaction left %d rows behind", len(store.rows))
	}
}

func TestPublishSnapshotsEmptyCohort(t *testing.T) {
	store := newFakeSnapshotStore()
	count, err := PublishSnapshots(store, testCohort, nil, true, time.Now())
	if err != nil {
		t.Fatalf("PublishSnapshots() error = %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}
