package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const blackoutSchema = `
CREATE TABLE blackouts (
    id TEXT PRIMARY KEY,
    label TEXT NOT NULL DEFAULT '',
    start_at TIMESTAMP NOT NULL,
    end_at TIMESTAMP NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(blackoutSchema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return db
}

func TestInsertAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewBlackoutRepo(testDB(t))

	later, err := repo.Insert(ctx, "maintenance",
		time.Date(2017, time.July, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2017, time.July, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	earlier, err := repo.Insert(ctx, "booked",
		time.Date(2017, time.June, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2017, time.June, 20, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if later.ID == earlier.ID {
		t.Fatal("ids must be unique")
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("list returned %d rows, want 2", len(got))
	}
	if got[0].Label != "booked" || got[1].Label != "maintenance" {
		t.Fatalf("rows not ordered by start: %q, %q", got[0].Label, got[1].Label)
	}
	if !got[0].StartAt.Equal(time.Date(2017, time.June, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start_at = %v", got[0].StartAt)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewBlackoutRepo(testDB(t))

	b, err := repo.Insert(ctx, "",
		time.Date(2017, time.June, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2017, time.June, 20, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("list returned %d rows after delete, want 0", len(got))
	}
}

func TestDeleteBySpan(t *testing.T) {
	ctx := context.Background()
	repo := NewBlackoutRepo(testDB(t))

	start := time.Date(2017, time.June, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2017, time.June, 20, 0, 0, 0, 0, time.UTC)
	if _, err := repo.Insert(ctx, "a", start, end); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := repo.Insert(ctx, "b", start, end); err != nil {
		t.Fatalf("insert: %v", err)
	}

	n, err := repo.DeleteBySpan(ctx, start, end)
	if err != nil {
		t.Fatalf("delete by span: %v", err)
	}
	if n != 2 {
		t.Fatalf("deleted %d rows, want 2", n)
	}
	n, err = repo.DeleteBySpan(ctx, start, end)
	if err != nil {
		t.Fatalf("delete by span: %v", err)
	}
	if n != 0 {
		t.Fatalf("deleted %d rows on empty table, want 0", n)
	}
}
