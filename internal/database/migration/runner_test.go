package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMigrationsOrdersByVersion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V10__add_index.sql", "CREATE INDEX idx ON t (a);")
	writeFile(t, dir, "V2__seed.sql", "INSERT INTO t VALUES (1);")
	writeFile(t, dir, "V1__init.sql", "CREATE TABLE t (a INT);")
	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, "broken.sql", "ignored, bad filename")

	migs, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("loadMigrations: %v", err)
	}

	if len(migs) != 3 {
		t.Fatalf("migrations = %d, want 3", len(migs))
	}
	for i, want := range []int64{1, 2, 10} {
		if migs[i].Version != want {
			t.Errorf("migs[%d].Version = %d, want %d (numeric, not lexical order)", i, migs[i].Version, want)
		}
	}
	if migs[0].Name != "init" {
		t.Errorf("name = %q, want init", migs[0].Name)
	}
	if migs[0].Checksum == "" || migs[0].Checksum == migs[1].Checksum {
		t.Error("checksums must be present and content-dependent")
	}
}

func TestLoadMigrationsRejectsDuplicatesAndEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V1__a.sql", "SELECT 1;")
	writeFile(t, dir, "V1__b.sql", "SELECT 2;")

	if _, err := loadMigrations(dir); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("err = %v, want duplicate version error", err)
	}

	dir2 := t.TempDir()
	writeFile(t, dir2, "V1__a.sql", "   ")
	if _, err := loadMigrations(dir2); err == nil || !strings.Contains(err.Error(), "empty") {
		t.Fatalf("err = %v, want empty file error", err)
	}
}

func TestLoadMigrationsMissingDir(t *testing.T) {
	migs, err := loadMigrations(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir should not error, got %v", err)
	}
	if len(migs) != 0 {
		t.Fatalf("migrations = %d, want 0", len(migs))
	}
}
