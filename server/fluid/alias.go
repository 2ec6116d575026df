package fluid

import (
	"sync"

	"github.com/dm-vev/metafluids/server/material"
)

// AliasTable maps canonical fluid names to the alternate names other subsystems register equivalent fluids under.
// The registry consults it before creating a fluid, so that a fluid already registered under the alternate name is
// adopted instead of duplicated.
type AliasTable struct {
	mu      sync.RWMutex
	aliases map[string]string
}

// NewAliasTable returns an empty AliasTable.
func NewAliasTable() *AliasTable {
	return &AliasTable{aliases: make(map[string]string)}
}

// SetAlias sets the alternate name of the canonical fluid name passed. A later call for the same canonical name
// replaces the earlier alternate name.
func (a *AliasTable) SetAlias(canonical, alternate string) {
	a.mu.Lock()
	a.aliases[canonical] = alternate
	a.mu.Unlock()
}

// SetAlternativeName sets the alternate name of the fluid of Kind k generated for m.
func (a *AliasTable) SetAlternativeName(m *material.Material, k Kind, alternate string) {
	a.SetAlias(CanonicalName(m, k), alternate)
}

// ResolveAlias returns the alternate name of the canonical fluid name passed, if any.
func (a *AliasTable) ResolveAlias(canonical string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	alt, ok := a.aliases[canonical]
	return alt, ok
}

// Len returns the amount of aliases in the table.
func (a *AliasTable) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.aliases)
}
