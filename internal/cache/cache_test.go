package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/gleaner/internal/model"
)

func TestKey(t *testing.T) {
	k1 := Key("Dell Latitude 7490 i5 256GB SSD")
	k2 := Key("Dell Latitude 7490 i5 256GB SSD")
	k3 := Key("HP EliteBook 840 G5")

	if k1 != k2 {
		t.Error("Expected identical titles to produce identical keys")
	}
	if k1 == k3 {
		t.Error("Expected different titles to produce different keys")
	}
	if !strings.HasPrefix(k1, "gleaner:v1:") {
		t.Errorf("Expected versioned key prefix, got %s", k1)
	}
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, found := c.Get("k")
	if !found {
		t.Fatal("Expected cache hit")
	}
	if string(val) != "v" {
		t.Errorf("Expected v, got %s", val)
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", c.Len())
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("Expected entry to expire")
	}
}

func TestMemoryCache_DeleteClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)

	if err := c.Delete("a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("Expected a to be deleted")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := c.Get("b"); found {
		t.Error("Expected b to be cleared")
	}
}

func TestDiskCache_SetGet(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	if err := c.Set(Key("title"), []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, found := c.Get(Key("title"))
	if !found {
		t.Fatal("Expected cache hit")
	}
	if string(val) != "payload" {
		t.Errorf("Expected payload, got %s", val)
	}
}

func TestDiskCache_Expired(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	if err := c.Set("k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected expired entry to miss")
	}
	// A second read must also miss: the expired file is removed.
	if _, found := c.Get("k"); found {
		t.Error("Expected expired entry to stay removed")
	}
}

func TestDiskCache_Missing(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)
	if _, found := c.Get("absent"); found {
		t.Error("Expected miss for absent key")
	}
}

func TestLayeredCache_PromotesDiskHit(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	// Write through the disk layer only, simulating a previous run.
	disk := NewDiskCache(dir, time.Minute)
	if err := disk.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get("k")
	if !found {
		t.Fatal("Expected disk hit through layered cache")
	}
	if string(val) != "v" {
		t.Errorf("Expected v, got %s", val)
	}

	// Entry is now in the memory layer too.
	mem := c.memory.(*MemoryCache)
	if _, found := mem.Get("k"); !found {
		t.Error("Expected disk hit to be promoted to memory")
	}
}

func TestResultCache_RoundTrip(t *testing.T) {
	rc := NewResultCache(NewMemoryCache(time.Minute, time.Minute), time.Minute)

	res := &model.Result{
		Title: "Lot of 2 Dell Latitude 7490 i5 256GB SSD",
		Attributes: model.FlatAttributes{
			{Key: "base", Value: "Intel"},
			{Key: "family", Value: "Core i5"},
			{Key: "storage_capacity1", Value: "256GB"},
			{Key: "storage_type", Value: "SSD"},
			{Key: "lot", Value: "2"},
		},
	}
	if err := rc.Put(res.Title, res); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, found := rc.Get(res.Title)
	if !found {
		t.Fatal("Expected cache hit")
	}
	if got.Title != res.Title {
		t.Errorf("Expected title %q, got %q", res.Title, got.Title)
	}
	if len(got.Attributes) != len(res.Attributes) {
		t.Fatalf("Expected %d attributes, got %d", len(res.Attributes), len(got.Attributes))
	}
	for i, p := range got.Attributes {
		if p != res.Attributes[i] {
			t.Errorf("Expected %v at index %d, got %v", res.Attributes[i], i, p)
		}
	}
}

func TestResultCache_NilIsNoop(t *testing.T) {
	var rc *ResultCache

	if err := rc.Put("title", &model.Result{Title: "title"}); err != nil {
		t.Errorf("Expected nil cache Put to be a no-op, got %v", err)
	}
	if _, found := rc.Get("title"); found {
		t.Error("Expected nil cache to never hit")
	}
}
