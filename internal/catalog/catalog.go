package catalog

import (
	"slices"
	"sort"
)

// index holds the component library with lookup maps.
type index struct {
	components []Component
	byID       map[string]*Component
	categories []string
}

// idx is the package-level library, built in init from seedComponents.
var idx *index

func init() {
	if err := validateComponents(seedComponents); err != nil {
		panic(err)
	}
	idx = buildIndex(seedComponents)
}

func buildIndex(components []Component) *index {
	ix := &index{
		components: components,
		byID:       make(map[string]*Component, len(components)),
	}
	seen := make(map[string]bool)
	for i := range ix.components {
		c := &ix.components[i]
		ix.byID[c.ID] = c
		if !seen[c.Category] {
			seen[c.Category] = true
			ix.categories = append(ix.categories, c.Category)
		}
	}
	sort.Strings(ix.categories)
	return ix
}

// Get returns a component by ID.
func Get(id string) (Component, bool) {
	c, ok := idx.byID[id]
	if !ok {
		return Component{}, false
	}
	return *c, true
}

// Exists reports whether id names a known component.
func Exists(id string) bool {
	_, ok := idx.byID[id]
	return ok
}

// All returns every component in library order.
func All() []Component {
	return slices.Clone(idx.components)
}

// Categories returns the distinct categories, sorted.
func Categories() []string {
	return slices.Clone(idx.categories)
}

// ByCategory returns the components in a category, in library order.
func ByCategory(category string) []Component {
	var out []Component
	for _, c := range idx.components {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// QuestionBank returns the full quiz bank for a component, or nil when the
// component is unknown. The returned slice is a copy.
func QuestionBank(id string) []QuizQuestion {
	c, ok := idx.byID[id]
	if !ok {
		return nil
	}
	return slices.Clone(c.Quiz)
}

// Library exposes the package-level catalog through an interface value so
// consumers can substitute their own banks in tests.
type Library struct{}

func (Library) QuestionBank(id string) []QuizQuestion { return QuestionBank(id) }
func (Library) Exists(id string) bool                 { return Exists(id) }
