package testutil

import (
	"testing"
	"time"
)

func TestClockAdvance(t *testing.T) {
	c := NewClock()
	start := c.Now()
	c.Advance(90 * time.Second)
	if got := c.Now().Sub(start); got != 90*time.Second {
		t.Fatalf("advance = %v, want 90s", got)
	}
}

func TestNewStoreIsMigrated(t *testing.T) {
	db := NewStore(t)

	var n int
	if err := db.Get(&n, "SELECT COUNT(*) FROM intersections"); err != nil {
		t.Fatalf("query intersections: %v", err)
	}
	if n != 0 {
		t.Fatalf("intersections = %d, want 0", n)
	}
}
