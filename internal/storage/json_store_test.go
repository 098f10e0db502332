package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/ritual/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ritual.json")
	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return s
}

func testHabit(id, name string) models.Habit {
	return models.Habit{
		ID:        id,
		Name:      name,
		Frequency: models.FrequencyDaily,
		CreatedAt: time.Now().UTC(),
	}
}

func TestJSONStore_InitTwiceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ritual.json")
	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := s.Init(); err == nil {
		t.Error("Second Init() must fail on an existing store")
	}
}

func TestJSONStore_LoadWithoutInit(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := s.Load(); err == nil {
		t.Error("Load() must fail when the store file does not exist")
	}
}

func TestJSONStore_HabitRoundTrip(t *testing.T) {
	s := newTestJSONStore(t)

	h := testHabit("h1", "Meditate")
	h.Category = models.CategoryMindfulness
	h.CustomDays = []int{1, 3}
	h.CompletedDates = []string{"2024-01-14", "2024-01-15"}
	if err := s.AddHabit(h); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	// Reload from disk to verify persistence.
	reloaded := NewJSONStore(s.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	got, err := reloaded.GetHabit("h1")
	if err != nil {
		t.Fatalf("GetHabit() failed: %v", err)
	}
	if got.Name != "Meditate" || got.Category != models.CategoryMindfulness {
		t.Errorf("Reloaded habit = %+v", got)
	}
	if len(got.CustomDays) != 2 || len(got.CompletedDates) != 2 {
		t.Errorf("Reloaded habit lost data: %+v", got)
	}
}

func TestJSONStore_GetHabitByName(t *testing.T) {
	s := newTestJSONStore(t)
	if err := s.AddHabit(testHabit("h1", "Run")); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	got, err := s.GetHabitByName("Run")
	if err != nil {
		t.Fatalf("GetHabitByName() failed: %v", err)
	}
	if got.ID != "h1" {
		t.Errorf("GetHabitByName() ID = %s, want h1", got.ID)
	}

	if _, err := s.GetHabitByName("Swim"); err == nil {
		t.Error("GetHabitByName() must fail for unknown name")
	}
}

func TestJSONStore_ArchiveLifecycle(t *testing.T) {
	s := newTestJSONStore(t)
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
		t.Errorf("Archived habit still listed as active: %v", active)
	}

	all, err := s.GetAllHabits(true, false)
	if err != nil {
		t.Fatalf("GetAllHabits() failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Archived habit missing from archived listing: %v", all)
	}

	if err := s.UnarchiveHabit("h1"); err != nil {
		t.Fatalf("UnarchiveHabit() failed: %v", err)
	}
	if err := s.UnarchiveHabit("h1"); err == nil {
		t.Error("Unarchiving an active habit must fail")
	}
}

func TestJSONStore_SoftDeleteAndRestore(t *testing.T) {
	s := newTestJSONStore(t)
	if err := s.AddHabit(testHabit("h1", "Run")); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	if err := s.DeleteHabit("h1"); err != nil {
		t.Fatalf("DeleteHabit() failed: %v", err)
	}
	if _, err := s.GetHabit("h1"); err == nil {
		t.Error("GetHabit() must not return deleted habits")
	}

	deleted, err := s.GetAllHabits(false, true)
	if err != nil {
		t.Fatalf("GetAllHabits() failed: %v", err)
	}
	if len(deleted) != 1 {
		t.Errorf("Deleted habit missing from deleted listing: %v", deleted)
	}

	if err := s.RestoreHabit("h1"); err != nil {
		t.Fatalf("RestoreHabit() failed: %v", err)
	}
	if _, err := s.GetHabit("h1"); err != nil {
		t.Errorf("GetHabit() after restore failed: %v", err)
	}
	if err := s.RestoreHabit("h1"); err == nil {
		t.Error("Restoring a live habit must fail")
	}
}

func TestJSONStore_SettingsRoundTrip(t *testing.T) {
	s := newTestJSONStore(t)

	if err := s.SaveSettings(models.Settings{Timezone: "America/New_York"}); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if got.Timezone != "America/New_York" {
		t.Errorf("Timezone = %s, want America/New_York", got.Timezone)
	}
}

func TestJSONStore_ListingSortedByCreation(t *testing.T) {
	s := newTestJSONStore(t)

	older := testHabit("h1", "First")
	older.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := testHabit("h2", "Second")
	newer.CreatedAt = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	if err := s.AddHabit(newer); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}
	if err := s.AddHabit(older); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	habits, err := s.GetAllHabits(false, false)
	if err != nil {
		t.Fatalf("GetAllHabits() failed: %v", err)
	}
	if len(habits) != 2 || habits[0].ID != "h1" || habits[1].ID != "h2" {
		t.Errorf("Listing out of order: %v", habits)
	}
}
