package model

import (
	"github.com/bmdebug/bmdebug/mi"
)

// maxLocalValueLen bounds a local variable's displayed value. Long
// strings/arrays (common with semihosting buffers) are trimmed with an
// ellipsis per spec.md §4.7.
const maxLocalValueLen = 256

// Local is one local variable as reported by -stack-list-variables.
type Local struct {
	Name      string
	Value     string
	InScope   bool
	Changed   bool
	lastValue string
}

// Locals is the Local Variable Model. Update() implements the
// mark-all-out-of-scope / re-mark-observed / delete-still-out-of-scope
// cycle described in spec.md §4.7, adapted from the in-scope/changed
// marking idiom in debugger/halt_watches.go (there applied to VCS memory
// watches; here to GDB stack variables).
type Locals struct {
	vars []Local
}

// Update folds a fresh -stack-list-variables reply into the model.
func (m *Locals) Update(reply mi.Value) {
	variables, ok := reply.Field("variables")
	if !ok {
		m.vars = nil
		return
	}

	for i := range m.vars {
		m.vars[i].InScope = false
	}

	for _, elem := range variables.List {
		name, _ := elem.Field("name")
		value, _ := elem.Field("value")

		v := truncate(value.String(), maxLocalValueLen)

		if idx := m.indexOf(name.String()); idx >= 0 {
			m.vars[idx].InScope = true
			m.vars[idx].Changed = m.vars[idx].lastValue != v
			m.vars[idx].Value = v
			m.vars[idx].lastValue = v
			continue
		}

		m.vars = append(m.vars, Local{
			Name:      name.String(),
			Value:     v,
			InScope:   true,
			Changed:   false,
			lastValue: v,
		})
	}

	kept := m.vars[:0]
	for _, v := range m.vars {
		if v.InScope {
			kept = append(kept, v)
		}
	}
	m.vars = kept
}

// All returns every in-scope local, in report order.
func (m *Locals) All() []Local {
	return m.vars
}

func (m *Locals) indexOf(name string) int {
	for i, v := range m.vars {
		if v.Name == name {
			return i
		}
	}
	return -1
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
