package vtkernel

import "testing"

func TestStyleCacheInternIdenticalStylesShareKey(t *testing.T) {
	cache := NewStyleCache()

	a := cache.Intern(Style{Flags: CellFlagBold})
	b := cache.Intern(Style{Flags: CellFlagBold})

	if a != b {
		t.Error("expected two writes resolving to an identical style to produce identical style-keys")
	}
	if cache.LiveCount() != 1 {
		t.Errorf("expected 1 live style, got %d", cache.LiveCount())
	}
}

func TestStyleCacheInternDistinctStyles(t *testing.T) {
	cache := NewStyleCache()

	a := cache.Intern(Style{Flags: CellFlagBold})
	b := cache.Intern(Style{Flags: CellFlagItalic})

	if a == b {
		t.Error("expected distinct styles to produce distinct style-keys")
	}
	if cache.LiveCount() != 2 {
		t.Errorf("expected 2 live styles, got %d", cache.LiveCount())
	}
}

func TestStyleCacheReleaseMovesToCold(t *testing.T) {
	cache := NewStyleCache()

	style := Style{Flags: CellFlagUnderline}
	cache.Intern(style)
	if cache.LiveCount() != 1 {
		t.Fatalf("expected 1 live style, got %d", cache.LiveCount())
	}

	cache.Release(style)
	if cache.LiveCount() != 0 {
		t.Errorf("expected 0 live styles after release, got %d", cache.LiveCount())
	}
	if cache.Len() != 1 {
		t.Errorf("expected released style retained in cold set, got Len() = %d", cache.Len())
	}
}

func TestStyleCacheReinternAfterReleaseReturnsSamePointer(t *testing.T) {
	cache := NewStyleCache()

	style := Style{Flags: CellFlagReverse}
	p1 := cache.Intern(style)
	cache.Release(style)

	// Re-interning the same style after its refcount hit zero but before
	// eviction should hand back the same pointer from the cold set.
	p2 := cache.Intern(style)
	if p1 != p2 {
		t.Error("expected re-intern to recover the cold-set entry instead of allocating a new one")
	}
}

func TestStyleCacheRefcountRequiresAllReleasesBeforeEviction(t *testing.T) {
	cache := NewStyleCache()

	style := Style{Flags: CellFlagDim}
	cache.Intern(style)
	cache.Intern(style) // second live reference

	cache.Release(style)
	if cache.LiveCount() != 1 {
		t.Errorf("expected style to remain live with one outstanding reference, got %d", cache.LiveCount())
	}

	cache.Release(style)
	if cache.LiveCount() != 0 {
		t.Errorf("expected style to move to cold once all references are released, got %d", cache.LiveCount())
	}
}

func TestStyleCacheBoundedCapacityEvictsCold(t *testing.T) {
	cache := NewStyleCacheWithCapacity(2)

	styles := []Style{
		{Flags: CellFlagBold},
		{Flags: CellFlagItalic},
		{Flags: CellFlagUnderline},
	}
	for _, s := range styles {
		cache.Intern(s)
		cache.Release(s)
	}

	if cache.Len() > 2 {
		t.Errorf("expected cold set bounded at capacity 2, got Len() = %d", cache.Len())
	}
}
