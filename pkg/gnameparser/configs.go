package gnameparser

import (
	"sync"

	"github.com/gnames/gnameparser/pkg/parsed"
)

// ParserConfigs holds manual overrides consulted by exact string match
// before any parsing job is submitted. Intended for known-pathological
// strings and curator-verified results.
//
// The maps are safe for concurrent use; readers racing a writer see either
// the old or the new value, never a torn one. Last write wins.
type ParserConfigs struct {
	mu          sync.RWMutex
	names       map[string]parsed.ParsedName
	authorships map[string]parsed.ParsedAuthorship
}

// NewParserConfigs creates an empty overrides store.
func NewParserConfigs() *ParserConfigs {
	return &ParserConfigs{
		names:       make(map[string]parsed.ParsedName),
		authorships: make(map[string]parsed.ParsedAuthorship),
	}
}

// ForName returns the override for a name string, if any.
func (c *ParserConfigs) ForName(name string) (parsed.ParsedName, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.names[name]
	return res, ok
}

// SetName installs or replaces the override for a name string.
func (c *ParserConfigs) SetName(name string, pn parsed.ParsedName) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names[name] = pn
}

// DeleteName removes the override for a name string.
func (c *ParserConfigs) DeleteName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.names, name)
}

// ForAuthorship returns the override for an authorship string, if any.
func (c *ParserConfigs) ForAuthorship(text string) (parsed.ParsedAuthorship, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.authorships[text]
	return res, ok
}

// SetAuthorship installs or replaces the override for an authorship string.
func (c *ParserConfigs) SetAuthorship(text string, pa parsed.ParsedAuthorship) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authorships[text] = pa
}

// DeleteAuthorship removes the override for an authorship string.
func (c *ParserConfigs) DeleteAuthorship(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.authorships, text)
}

// Len reports how many name and authorship overrides are installed.
func (c *ParserConfigs) Len() (int, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names), len(c.authorships)
}
