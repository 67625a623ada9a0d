package cache

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := New(time.Minute)

	c.Set("k", "value")
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Expected hit after Set")
	}
	if got != "value" {
		t.Errorf("Expected %q, got %q", "value", got)
	}
}

func TestCache_Miss(t *testing.T) {
	c := New(time.Minute)

	if _, ok := c.Get("absent"); ok {
		t.Error("Expected miss for absent key")
	}
}

func TestCache_NilIsDisabled(t *testing.T) {
	var c *Cache

	c.Set("k", "v") // must not panic
	if _, ok := c.Get("k"); ok {
		t.Error("Expected nil cache to never hit")
	}
	c.Flush()
}

func TestCache_Flush(t *testing.T) {
	c := New(time.Minute)
	c.Set("k", "v")
	c.Flush()

	if _, ok := c.Get("k"); ok {
		t.Error("Expected miss after Flush")
	}
}

func TestKey_StableAndDistinct(t *testing.T) {
	a := Key("feed", "http://example.com?q=1")
	b := Key("feed", "http://example.com?q=1")
	if a != b {
		t.Error("Expected identical parts to produce identical keys")
	}

	c := Key("feed", "http://example.com?q=2")
	if a == c {
		t.Error("Expected different parts to produce different keys")
	}
}
