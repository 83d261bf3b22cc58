package analyzer

import "sort"

// counter is a frequency table that remembers first-insertion order, so
// ranking ties resolve to whichever key was seen first. Each analysis
// invocation owns its counters exclusively; nothing survives the call.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string, n int) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

// setMax records v for key only when it exceeds the current value.
func (c *counter) setMax(key string, v int) {
	if cur, seen := c.counts[key]; seen {
		if v > cur {
			c.counts[key] = v
		}
		return
	}
	c.order = append(c.order, key)
	c.counts[key] = v
}

func (c *counter) get(key string) int {
	return c.counts[key]
}

func (c *counter) size() int {
	return len(c.order)
}

// rankedEntry is one key with its accumulated count.
type rankedEntry struct {
	key   string
	count int
}

// top returns the entries sorted descending by count, ties in first-seen
// order, truncated to limit (limit <= 0 means no cap).
func (c *counter) top(limit int) []rankedEntry {
	entries := make([]rankedEntry, 0, len(c.order))
	for _, k := range c.order {
		entries = append(entries, rankedEntry{key: k, count: c.counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// snapshot copies the table into a plain map for the report.
func (c *counter) snapshot() map[string]int {
	out := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}

// intCounter is a counter keyed by integers (hour of day).
type intCounter struct {
	counts map[int]int
	order  []int
}

func newIntCounter() *intCounter {
	return &intCounter{counts: make(map[int]int)}
}

func (c *intCounter) add(key, n int) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

type rankedIntEntry struct {
	key   int
	count int
}

func (c *intCounter) top(limit int) []rankedIntEntry {
	entries := make([]rankedIntEntry, 0, len(c.order))
	for _, k := range c.order {
		entries = append(entries, rankedIntEntry{key: k, count: c.counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func (c *intCounter) snapshot() map[int]int {
	out := make(map[int]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
