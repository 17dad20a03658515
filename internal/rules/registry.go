package rules

import (
	"cmp"
	"slices"
	"sync"

	"prim/internal/diag"
)

// Registry holds the known rules, addressable by diagnostic code and by
// manifest name. Registering a rule under a taken code or name replaces the
// previous entry.
type Registry struct {
	mu     sync.RWMutex
	byCode map[diag.Code]Rule
	byName map[string]Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byCode: make(map[diag.Code]Rule),
		byName: make(map[string]Rule),
	}
}

// Default builds a registry with every built-in layout rule. Callers get
// their own instance; there is no shared global to mutate.
func Default() *Registry {
	r := NewRegistry()
	r.Register(TrailingWhitespace{})
	r.Register(FileStartBlankLines{})
	r.Register(BlankAfterOpenBrace{})
	r.Register(BlankBeforeCloseBrace{})
	r.Register(TooManyBlankLines{})
	r.Register(FileEndBlankLines{})
	r.Register(MissingFinalNewline{})
	return r
}

// Register adds a rule to the registry.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byCode[rule.Code()] = rule
	r.byName[rule.Name()] = rule
}

// Get retrieves a rule by its manifest name.
func (r *Registry) Get(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byName[name]
	return rule, ok
}

// GetByCode retrieves a rule by its diagnostic code.
func (r *Registry) GetByCode(code diag.Code) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byCode[code]
	return rule, ok
}

// Rules returns every registered rule ordered by code, so runs and reports
// are deterministic.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.byCode))
	for _, rule := range r.byCode {
		result = append(result, rule)
	}
	slices.SortFunc(result, func(a, b Rule) int {
		return cmp.Compare(a.Code(), b.Code())
	})
	return result
}

// Names returns every registered rule name in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byName))
	for name := range r.byName {
		result = append(result, name)
	}
	slices.Sort(result)
	return result
}
