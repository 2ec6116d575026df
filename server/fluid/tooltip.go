package fluid

import "sync"

// Tooltips maps fluid names to the chemical formula shown in their tooltip.
type Tooltips struct {
	mu       sync.RWMutex
	formulas map[string]string
}

// NewTooltips returns an empty Tooltips.
func NewTooltips() *Tooltips {
	return &Tooltips{formulas: make(map[string]string)}
}

// Register sets the tooltip of the fluid with the name passed. Empty formulas are ignored.
func (t *Tooltips) Register(fluid, formula string) {
	if formula == "" {
		return
	}
	t.mu.Lock()
	t.formulas[fluid] = formula
	t.mu.Unlock()
}

// Lookup returns the tooltip of the fluid with the name passed.
func (t *Tooltips) Lookup(fluid string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	formula, ok := t.formulas[fluid]
	return formula, ok
}
