package models

import (
	"testing"
	"time"
)

func TestCustomTimeUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", input: `"2026-02-01"`, want: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{name: "null clears", input: `null`, want: time.Time{}},
		{name: "empty string clears", input: `""`, want: time.Time{}},
		{name: "time suffix rejected", input: `"2026-02-01T10:00:00Z"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ct CustomTime
			err := ct.UnmarshalJSON([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalJSON(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !ct.Time.Equal(tt.want) {
				t.Errorf("UnmarshalJSON(%s) = %v, want %v", tt.input, ct.Time, tt.want)
			}
		})
	}
}

func TestCustomTimeMarshalJSON(t *testing.T) {
	ct := CustomTime{Time: time.Date(2026, 2, 1, 15, 4, 5, 0, time.UTC)}
	got, err := ct.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(got) != `"2026-02-01"` {
		t.Errorf("MarshalJSON() = %s, want \"2026-02-01\"", got)
	}
}

func TestCustomTimeScan(t *testing.T) {
	var ct CustomTime
	when := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if err := ct.Scan(when); err != nil {
		t.Fatalf("Scan(time.Time) error = %v", err)
	}
	if !ct.Time.Equal(when) {
		t.Errorf("Scan(time.Time) = %v, want %v", ct.Time, when)
	}

	if err := ct.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if !ct.Time.IsZero() {
		t.Errorf("Scan(nil) = %v, want zero time", ct.Time)
	}

	if err := ct.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
}

func TestCustomTimeValue(t *testing.T) {
	when := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	v, err := CustomTime{Time: when}.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if got, ok := v.(time.Time); !ok || !got.Equal(when) {
		t.Errorf("Value() = %v, want %v", v, when)
	}
}

func TestAcademicYearIsCurrentByDate(t *testing.T) {
	now := time.Now()
	current := &AcademicYear{
		StartDate: CustomTime{Time: now.AddDate(0, -1, 0)},
		EndDate:   CustomTime{Time: now.AddDate(0, 1, 0)},
	}
	if !current.IsCurrentByDate() {
		t.Error("year spanning today should be current")
	}

	past := &AcademicYear{
		StartDate: CustomTime{Time: now.AddDate(-2, 0, 0)},
		EndDate:   CustomTime{Time: now.AddDate(-1, 0, 0)},
	}
	if past.IsCurrentByDate() {
		t.Error("ended year should not be current")
	}
}

func TestTermIsCurrentByDate(t *testing.T) {
	now := time.Now()
	term := &Term{
		StartDate: CustomTime{Time: now.AddDate(0, 0, -7)},
		EndDate:   CustomTime{Time: now.AddDate(0, 0, 7)},
	}
	if !term.IsCurrentByDate() {
		t.Error("term spanning today should be current")
	}
}
