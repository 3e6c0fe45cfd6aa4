package gormstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goliatone/go-contenttags/pkg/modelreg"
	"github.com/goliatone/go-contenttags/pkg/sources/gormstore"
)

type Post struct {
	ID        uint
	Title     string
	CreatedAt time.Time
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Post{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedPosts(t *testing.T, db *gorm.DB, count int) {
	t.Helper()

	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= count; i++ {
		post := Post{
			Title:     "post-" + string(rune('0'+i)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := db.Create(&post).Error; err != nil {
			t.Fatalf("seed post %d: %v", i, err)
		}
	}
}

func TestStore_LatestOrdersAndLimits(t *testing.T) {
	db := openDB(t)
	seedPosts(t, db, 5)

	store, err := gormstore.New[Post](db, gormstore.WithOrder("created_at DESC"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	rows, err := store.Latest(context.Background(), 3)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("latest returned %d rows, want 3", len(rows))
	}

	titles := make([]string, 0, len(rows))
	for _, row := range rows {
		titles = append(titles, row.(Post).Title)
	}
	want := []string{"post-5", "post-4", "post-3"}
	for i, title := range want {
		if titles[i] != title {
			t.Fatalf("row %d title = %q, want %q (titles: %v)", i, titles[i], title, titles)
		}
	}
}

func TestStore_LatestNonPositiveCount(t *testing.T) {
	db := openDB(t)
	seedPosts(t, db, 2)

	store, err := gormstore.New[Post](db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for _, n := range []int{0, -3} {
		rows, err := store.Latest(context.Background(), n)
		if err != nil {
			t.Fatalf("latest(%d): %v", n, err)
		}
		if len(rows) != 0 {
			t.Fatalf("latest(%d) returned %d rows, want none", n, len(rows))
		}
	}
}

func TestStore_GetOutcomes(t *testing.T) {
	db := openDB(t)
	seedPosts(t, db, 3)

	store, err := gormstore.New[Post](db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ctx := context.Background()

	found, err := store.Get(ctx, "2")
	if err != nil {
		t.Fatalf("get 2: %v", err)
	}
	if found.Outcome != modelreg.OutcomeFound {
		t.Fatalf("get 2 outcome = %v, want found", found.Outcome)
	}
	if got := found.Object.(Post).ID; got != 2 {
		t.Fatalf("get 2 returned ID %d", got)
	}

	missing, err := store.Get(ctx, "42")
	if err != nil {
		t.Fatalf("get 42: %v", err)
	}
	if missing.Outcome != modelreg.OutcomeNotFound {
		t.Fatalf("get 42 outcome = %v, want not found", missing.Outcome)
	}
}

func TestStore_GetAmbiguousOnNonUniqueColumn(t *testing.T) {
	db := openDB(t)

	dup := []Post{
		{Title: "same", CreatedAt: time.Now()},
		{Title: "same", CreatedAt: time.Now()},
	}
	for i := range dup {
		if err := db.Create(&dup[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	store, err := gormstore.New[Post](db, gormstore.WithPrimaryKeyColumn("title"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	lookup, err := store.Get(context.Background(), "same")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if lookup.Outcome != modelreg.OutcomeAmbiguous {
		t.Fatalf("outcome = %v, want ambiguous", lookup.Outcome)
	}
}

func TestNew_RequiresDB(t *testing.T) {
	if _, err := gormstore.New[Post](nil); err == nil {
		t.Fatal("expected nil db to be rejected")
	}
}
