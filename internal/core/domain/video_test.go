package domain

import (
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2024, time.January, n, 12, 0, 0, 0, time.UTC)
}

func TestSortByNewest(t *testing.T) {
	videos := []Video{
		{ID: "old", PublishedAt: day(1)},
		{ID: "new", PublishedAt: day(9)},
		{ID: "mid", PublishedAt: day(5)},
	}

	SortByNewest(videos)

	want := []string{"new", "mid", "old"}
	for i, id := range want {
		if videos[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, videos[i].ID, id)
		}
	}
}

func TestDedupeByID(t *testing.T) {
	videos := []Video{
		{ID: "a", ViewCount: 10},
		{ID: "b"},
		{ID: "a", ViewCount: 99},
		{ID: "c"},
	}

	deduped := DedupeByID(videos)

	if len(deduped) != 3 {
		t.Fatalf("len = %d, want 3", len(deduped))
	}
	if deduped[0].ID != "a" || deduped[0].ViewCount != 10 {
		t.Errorf("first occurrence should win, got %+v", deduped[0])
	}
	if deduped[1].ID != "b" || deduped[2].ID != "c" {
		t.Errorf("order not preserved: %+v", deduped)
	}
}
