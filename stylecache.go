package vtkernel

import (
	"image/color"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Style is the attribute bundle a cell carries besides its rune: the two
// content colors, the underline color, and the formatting flag bitmask.
// It is a plain comparable value so it can key a map directly.
type Style struct {
	Fg             color.Color
	Bg             color.Color
	UnderlineColor color.Color
	Flags          CellFlags
}

// styleEntry is the refcounted record behind one interned Style: refs
// counts how many live cells currently point at it.
type styleEntry struct {
	style *Style
	refs  int
}

// StyleCache interns repeated Style combinations behind a single pointer so
// a screen full of identically-styled text shares one allocation instead of
// one per cell. It is bounded: once a style's refcount drops to zero it
// becomes eligible for LRU eviction from the cold set, but a style with any
// live reference is never evicted regardless of how full the cache gets.
type StyleCache struct {
	mu   sync.Mutex
	live map[Style]*styleEntry
	cold *lru.Cache[Style, *Style]
}

// defaultStyleCacheCapacity bounds the cold (refcount-zero) side of the
// cache; live styles are never subject to this limit.
const defaultStyleCacheCapacity = 4096

// NewStyleCache creates a style cache with the default cold-set capacity.
func NewStyleCache() *StyleCache {
	return NewStyleCacheWithCapacity(defaultStyleCacheCapacity)
}

// NewStyleCacheWithCapacity creates a style cache whose cold (unreferenced)
// set holds at most capacity entries before older ones are evicted.
func NewStyleCacheWithCapacity(capacity int) *StyleCache {
	if capacity < 1 {
		capacity = 1
	}
	cold, _ := lru.New[Style, *Style](capacity)
	return &StyleCache{
		live: make(map[Style]*styleEntry),
		cold: cold,
	}
}

// Intern returns a canonical pointer for style, incrementing its live
// refcount. Callers must pair every Intern with a Release once the cell
// holding the returned pointer is reset or overwritten.
func (c *StyleCache) Intern(style Style) *Style {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.live[style]; ok {
		e.refs++
		return e.style
	}
	if p, ok := c.cold.Get(style); ok {
		c.cold.Remove(style)
		c.live[style] = &styleEntry{style: p, refs: 1}
		return p
	}

	p := &style
	c.live[style] = &styleEntry{style: p, refs: 1}
	return p
}

// Release decrements the refcount for style. At zero references the entry
// moves from the live set into the bounded cold set, where it may be
// evicted under memory pressure from further distinct styles.
func (c *StyleCache) Release(style Style) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.live[style]
	if !ok {
		return
	}
	e.refs--
	if e.refs > 0 {
		return
	}
	delete(c.live, style)
	c.cold.Add(style, e.style)
}

// Len reports the number of distinct styles currently tracked, live or cold.
func (c *StyleCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live) + c.cold.Len()
}

// LiveCount reports the number of distinct styles with at least one live
// reference — entries the cache will never evict.
func (c *StyleCache) LiveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}
