package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestDifficultyDefault(t *testing.T) {
	store := openTestStore(t)

	v, err := store.Difficulty()
	if err != nil {
		t.Fatalf("Difficulty() failed: %v", err)
	}
	if v != DefaultDifficulty {
		t.Errorf("Difficulty() = %d, expected default %d", v, DefaultDifficulty)
	}
}

func TestDifficultyRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetDifficulty(5); err != nil {
		t.Fatalf("SetDifficulty() failed: %v", err)
	}
	v, err := store.Difficulty()
	if err != nil {
		t.Fatalf("Difficulty() failed: %v", err)
	}
	if v != 5 {
		t.Errorf("Difficulty() = %d, expected 5", v)
	}
}

func TestDifficultyOutOfRangeRejected(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetDifficulty(0); err == nil {
		t.Error("SetDifficulty(0) should fail")
	}
	if err := store.SetDifficulty(6); err == nil {
		t.Error("SetDifficulty(6) should fail")
	}
}

func TestCorruptDifficultyRecovered(t *testing.T) {
	store := openTestStore(t)

	if err := store.rawSetSetting("difficulty", 99); err != nil {
		t.Fatal(err)
	}
	v, err := store.Difficulty()
	if err != nil {
		t.Fatalf("Difficulty() failed: %v", err)
	}
	if v != DefaultDifficulty {
		t.Errorf("corrupt difficulty not recovered: got %d", v)
	}
	// The rewrite must stick.
	v2, _ := store.Difficulty()
	if v2 != DefaultDifficulty {
		t.Errorf("recovered difficulty not persisted: got %d", v2)
	}
}

func TestRecordScorePromotesBest(t *testing.T) {
	store := openTestStore(t)

	improved, err := store.RecordScore("snake", 7)
	if err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}
	if !improved {
		t.Error("first score should improve the best")
	}

	improved, err = store.RecordScore("snake", 12)
	if err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}
	if !improved {
		t.Error("higher score should improve the best")
	}

	best, err := store.BestScore("snake")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 12 {
		t.Errorf("BestScore() = %d, expected 12", best)
	}
}

func TestRecordScoreNonImprovingIsNoOp(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RecordScore("dino", 50); err != nil {
		t.Fatal(err)
	}

	// Two non-improving writes in a row: best stays untouched.
	for i := 0; i < 2; i++ {
		improved, err := store.RecordScore("dino", 30)
		if err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
		if improved {
			t.Error("non-improving score reported as improvement")
		}
	}

	best, _ := store.BestScore("dino")
	if best != 50 {
		t.Errorf("BestScore() = %d, expected 50", best)
	}
}

func TestBestScoresIndependentPerGame(t *testing.T) {
	store := openTestStore(t)

	store.RecordScore("dino", 10)
	store.RecordScore("dodge", 20)
	store.RecordScore("snake", 30)

	for _, tc := range []struct {
		game string
		want int
	}{
		{"dino", 10}, {"dodge", 20}, {"snake", 30},
	} {
		best, err := store.BestScore(tc.game)
		if err != nil {
			t.Fatalf("BestScore(%s) failed: %v", tc.game, err)
		}
		if best != tc.want {
			t.Errorf("BestScore(%s) = %d, expected %d", tc.game, best, tc.want)
		}
	}
}

func TestCorruptBestScoreReset(t *testing.T) {
	store := openTestStore(t)

	if err := store.rawSetBestScore("dodge", 123456); err != nil {
		t.Fatal(err)
	}
	best, err := store.BestScore("dodge")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("corrupt best score not reset: got %d", best)
	}
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{3, 1, 4} {
		if _, err := store.RecordScore("snake", score); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.RecentRuns("snake", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	// Newest first.
	if runs[0].Score != 4 || runs[1].Score != 1 {
		t.Errorf("runs out of order: %d, %d", runs[0].Score, runs[1].Score)
	}
}

func TestClockOffsetRoundTrip(t *testing.T) {
	store := openTestStore(t)

	off, err := store.ClockOffset()
	if err != nil || off != 0 {
		t.Fatalf("fresh offset = %v, %v; expected 0, nil", off, err)
	}

	want := 90*time.Minute + 250*time.Millisecond
	if err := store.SetClockOffset(want); err != nil {
		t.Fatalf("SetClockOffset() failed: %v", err)
	}
	got, err := store.ClockOffset()
	if err != nil {
		t.Fatalf("ClockOffset() failed: %v", err)
	}
	// Stored at millisecond resolution.
	if got != want.Truncate(time.Millisecond) {
		t.Errorf("ClockOffset() = %v, expected %v", got, want)
	}
}

func TestClearAll(t *testing.T) {
	store := openTestStore(t)

	store.RecordScore("dino", 9)
	store.SetDifficulty(4)

	if err := store.ClearAll(); err != nil {
		t.Fatalf("ClearAll() failed: %v", err)
	}

	if best, _ := store.BestScore("dino"); best != 0 {
		t.Error("best score survived ClearAll")
	}
	if v, _ := store.Difficulty(); v != DefaultDifficulty {
		t.Error("difficulty survived ClearAll")
	}
	if runs, _ := store.RecentRuns("dino", 10); len(runs) != 0 {
		t.Error("runs survived ClearAll")
	}
}
