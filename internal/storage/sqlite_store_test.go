package storage

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/ritual/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ritual.db")
	s := NewSQLiteStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_InitAppliesMigrations(t *testing.T) {
	s := newTestSQLiteStore(t)

	if !s.tableExists("habits") {
		t.Error("habits table missing after Init()")
	}
	if !s.tableExists("completions") {
		t.Error("completions table missing after Init()")
	}
	if !s.tableExists("settings") {
		t.Error("settings table missing after Init()")
	}

	settings, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if settings.Timezone == "" {
		t.Error("Init() must seed a default timezone")
	}
}

func TestSQLiteStore_LoadWithoutInit(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := s.Load(); err == nil {
		t.Error("Load() must fail when the database file does not exist")
	}
}

func TestSQLiteStore_HabitRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	h := testHabit("h1", "Meditate")
	h.Description = "Ten quiet minutes"
	h.Category = models.CategoryMindfulness
	h.Frequency = models.FrequencyWeekly
	h.CustomDays = []int{1, 3, 5}
	h.CompletedDates = []string{"2024-01-14", "2024-01-15"}

	if err := s.AddHabit(h); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	got, err := s.GetHabit("h1")
	if err != nil {
		t.Fatalf("GetHabit() failed: %v", err)
	}
	if got.Name != "Meditate" || got.Description != "Ten quiet minutes" {
		t.Errorf("Habit fields lost: %+v", got)
	}
	if got.Frequency != models.FrequencyWeekly || len(got.CustomDays) != 3 {
		t.Errorf("Recurrence fields lost: %+v", got)
	}
	if len(got.CompletedDates) != 2 {
		t.Errorf("Completions lost: %v", got.CompletedDates)
	}
}

func TestSQLiteStore_UpdateReplacesCompletions(t *testing.T) {
	s := newTestSQLiteStore(t)

	h := testHabit("h1", "Run")
	h.CompletedDates = []string{"2024-01-14", "2024-01-15"}
	if err := s.AddHabit(h); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	// Unmark one day and persist.
	h.CompletedDates = []string{"2024-01-14"}
	if err := s.UpdateHabit(h); err != nil {
		t.Fatalf("UpdateHabit() failed: %v", err)
	}

	got, err := s.GetHabit("h1")
	if err != nil {
		t.Fatalf("GetHabit() failed: %v", err)
	}
	if len(got.CompletedDates) != 1 || got.CompletedDates[0] != "2024-01-14" {
		t.Errorf("Completions = %v, want [2024-01-14]", got.CompletedDates)
	}
}

func TestSQLiteStore_ArchiveAndDeleteLifecycle(t *testing.T) {
	s := newTestSQLiteStore(t)
	if err := s.AddHabit(testHabit("h1", "Run")); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	if err := s.ArchiveHabit("h1"); err != nil {
		t.Fatalf("ArchiveHabit() failed: %v", err)
	}
	if err := s.ArchiveHabit("h1"); err == nil {
		t.Error("Archiving an archived habit must fail")
	}

	active, err := s.GetAllHabits(false, false)
	if err != nil {
		t.Fatalf("GetAllHabits() failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("Archived habit listed as active: %v", active)
	}

	if err := s.UnarchiveHabit("h1"); err != nil {
		t.Fatalf("UnarchiveHabit() failed: %v", err)
	}

	if err := s.DeleteHabit("h1"); err != nil {
		t.Fatalf("DeleteHabit() failed: %v", err)
	}
	if _, err := s.GetHabit("h1"); err == nil {
		t.Error("GetHabit() must not return deleted habits")
	}

	if err := s.RestoreHabit("h1"); err != nil {
		t.Fatalf("RestoreHabit() failed: %v", err)
	}
	if _, err := s.GetHabit("h1"); err != nil {
		t.Errorf("GetHabit() after restore failed: %v", err)
	}
}

func TestSQLiteStore_SettingsRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.SaveSettings(models.Settings{Timezone: "Europe/Berlin"}); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if got.Timezone != "Europe/Berlin" {
		t.Errorf("Timezone = %s, want Europe/Berlin", got.Timezone)
	}
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ritual.db")
	s := NewSQLiteStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := s.AddHabit(testHabit("h1", "Run")); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	defer reopened.Close()

	if _, err := reopened.GetHabit("h1"); err != nil {
		t.Errorf("GetHabit() after reopen failed: %v", err)
	}
}
