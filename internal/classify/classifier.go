package classify

import (
	"strings"

	"github.com/finsift/finsift/internal/model"
)

// MemoryLookup resolves a transaction description against the learned
// category memory. Implemented by memory.Memory.
type MemoryLookup interface {
	Get(description string) (string, bool)
}

// Classifier assigns a category to a transaction-shaped input. It never
// returns an empty category.
type Classifier struct {
	memory MemoryLookup
	rules  []Rule
}

// New creates a classifier backed by the given category memory and the
// default rule table. A nil memory disables the memory lookup stage.
func New(memory MemoryLookup) *Classifier {
	return &Classifier{memory: memory, rules: DefaultRules()}
}

// NewWithRules creates a classifier with a custom rule table.
func NewWithRules(memory MemoryLookup, rules []Rule) *Classifier {
	return &Classifier{memory: memory, rules: rules}
}

// Classify resolves a category for the input. A category memory hit
// overrides every rule; otherwise the first matching rule in table order
// wins; otherwise a credit-dominant transaction is Income; otherwise
// Uncategorised.
func (c *Classifier) Classify(in Input) string {
	if c.memory != nil {
		if category, ok := c.memory.Get(in.Description); ok {
			return category
		}
	}

	haystack := strings.ToUpper(in.Type) + " " + strings.ToUpper(in.Description)
	for _, rule := range c.rules {
		if rule.Predicate != nil && !rule.Predicate(in) {
			continue
		}
		for _, keyword := range rule.Keywords {
			if keyword != "" && strings.Contains(haystack, keyword) {
				return rule.Category
			}
		}
	}

	if in.Credit > 0 && in.Credit >= in.Debit {
		return model.CategoryIncome
	}
	return model.CategoryUncategorised
}
