package game

import (
	"path/filepath"
	"testing"

	"github.com/KRussellSmith/malthusian-wetdream/pkg/config"
)

func openTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "game.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteStoreGetSet(t *testing.T) {
	db := openTestDB(t)

	if _, ok, err := db.Get(config.StorageKey); err != nil || ok {
		t.Fatalf("Expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := db.Set(config.StorageKey, 12); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Set(config.StorageKey, 15); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := db.Get(config.StorageKey)
	if err != nil || !ok || v != 15 {
		t.Errorf("Get = %d, %v, %v; want 15, true, nil", v, ok, err)
	}
}

func TestSQLiteStoreRaise(t *testing.T) {
	db := openTestDB(t)
	db.Set(config.StorageKey, 20)

	if v, err := db.Raise(config.StorageKey, 5); err != nil || v != 20 {
		t.Errorf("Raise to lower value = %d, %v; want 20", v, err)
	}
	if v, err := db.Raise(config.StorageKey, 30); err != nil || v != 30 {
		t.Errorf("Raise to higher value = %d, %v; want 30", v, err)
	}
	if v, err := db.Raise("fresh", 3); err != nil || v != 3 {
		t.Errorf("Raise on missing key = %d, %v; want 3", v, err)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	g := NewGame(testSettings(10), db, nil)
	g.food = g.Snake().Head()
	g.Update()
	db.Close()

	db, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	g = NewGame(testSettings(10), db, nil)
	if g.HighScore() != 1 {
		t.Errorf("Expected high score 1 after reopen, got %d", g.HighScore())
	}
}
