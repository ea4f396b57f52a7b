package crafting

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
)

// cachedBreakdown wraps a breakdown with the catalog checksum it was built from
type cachedBreakdown struct {
	Checksum  string
	Breakdown *ModBreakdown
}

// breakdownCache is an in-memory LRU of available-modifier breakdowns with
// time-based expiration. Entries from another catalog are dropped on read.
type breakdownCache struct {
	checksum string
	lru      *expirable.LRU[string, *cachedBreakdown]
}

func newBreakdownCache(size int, ttl time.Duration, checksum string) *breakdownCache {
	if size <= 0 {
		size = DefaultBreakdownCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultBreakdownCacheTTL
	}
	return &breakdownCache{
		checksum: checksum,
		lru:      expirable.NewLRU[string, *cachedBreakdown](size, nil, ttl),
	}
}

// breakdownKey covers everything the breakdown depends on: category, item
// level, occupied groups and the explicit stat texts exclusion rules match against
func breakdownKey(item *domain.Item) string {
	groups := make([]string, 0, item.ExplicitCount())
	texts := make([]string, 0, item.ExplicitCount())
	for _, m := range item.Explicits() {
		groups = append(groups, m.Group)
		texts = append(texts, m.Text())
	}
	sort.Strings(groups)
	sort.Strings(texts)

	var b strings.Builder
	b.WriteString(item.Category)
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(item.ItemLevel))
	b.WriteByte('|')
	b.WriteString(strings.Join(groups, ","))
	b.WriteByte('|')
	b.WriteString(strings.Join(texts, "\x1f"))
	return b.String()
}

// Get returns a breakdown for the item if one is cached for the current catalog
func (c *breakdownCache) Get(item *domain.Item) (*ModBreakdown, bool) {
	key := breakdownKey(item)
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Checksum != c.checksum {
		c.lru.Remove(key)
		return nil, false
	}
	return entry.Breakdown, true
}

// Set stores a breakdown for the item
func (c *breakdownCache) Set(item *domain.Item, breakdown *ModBreakdown) {
	c.lru.Add(breakdownKey(item), &cachedBreakdown{
		Checksum:  c.checksum,
		Breakdown: breakdown,
	})
}
