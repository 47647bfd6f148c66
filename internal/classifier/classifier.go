// Package classifier assigns line items to a trade category from keywords
// found in their description.
package classifier

import (
	"strings"
	"sync"

	"github.com/cloudflare/ahocorasick"

	"xactdiff/internal/config"
	"xactdiff/internal/domain"
)

// bucket pairs a category with a matcher over its lowercased keywords.
type bucket struct {
	category domain.Category
	matcher  *ahocorasick.Matcher
}

// Classifier maps a description to the first category, in priority order,
// whose keyword list has a case-insensitive substring hit. Keyword lists are
// fixed at construction.
type Classifier struct {
	mu      sync.Mutex // ahocorasick matchers keep per-scan state
	buckets []bucket
}

// New builds a Classifier. Priority is Labor, Materials, Equipment, then
// Overhead & Profit; anything without a hit is Other.
func New(cfg config.ClassifierConfig) *Classifier {
	ordered := []struct {
		category domain.Category
		keywords []string
	}{
		{domain.CategoryLabor, cfg.Labor},
		{domain.CategoryMaterials, cfg.Materials},
		{domain.CategoryEquipment, cfg.Equipment},
		{domain.CategoryOverheadAndProfit, cfg.OverheadAndProfit},
	}

	c := &Classifier{}
	for _, o := range ordered {
		patterns := make([]string, 0, len(o.keywords))
		for _, kw := range o.keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				patterns = append(patterns, kw)
			}
		}
		// An empty list never matches; skip it rather than build an empty trie.
		if len(patterns) == 0 {
			continue
		}
		c.buckets = append(c.buckets, bucket{
			category: o.category,
			matcher:  ahocorasick.NewStringMatcher(patterns),
		})
	}
	return c
}

// NewDefault builds a Classifier with the built-in roofing keyword set.
func NewDefault() *Classifier {
	return New(config.DefaultClassifierConfig())
}

// Classify returns the category for description.
func (c *Classifier) Classify(description string) domain.Category {
	text := []byte(strings.ToLower(description))

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, b := range c.buckets {
		if b.matcher.Contains(text) {
			return b.category
		}
	}
	return domain.CategoryOther
}

// ClassifyAll returns a copy of items with Category set on each.
func (c *Classifier) ClassifyAll(items []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i := range items {
		out[i] = items[i]
		out[i].Category = c.Classify(items[i].Description)
	}
	return out
}
