package model

import (
	"github.com/bmdebug/bmdebug/mi"
)

// Watch is a GDB variable object (watch expression) tracked by MI name.
type Watch struct {
	Name       string // the watchN MI name GDB assigned via -var-create
	Expression string
	Value      string
	Format     string // "natural", "hexadecimal", "decimal", "binary", "octal"
	InScope    bool
	Changed    bool
}

func (w Watch) String() string {
	return w.Expression + " = " + w.Value
}

// Watches is the Watch Model, keyed on GDB's MI variable-object name.
// Grounded structurally on debugger/watches.go's slice-plus-drop-by-index
// collection, reworked around var-object names instead of VCS memory
// addresses.
type Watches struct {
	watches []Watch
}

// Create registers a new watch from a -var-create reply. expression is the
// user-typed text GDB was asked to watch.
func (m *Watches) Create(expression string, reply mi.Value) Watch {
	name, _ := reply.Field("name")
	value, _ := reply.Field("value")

	w := Watch{
		Name:       name.String(),
		Expression: expression,
		Value:      value.String(),
		Format:     "natural",
		InScope:    true,
	}
	m.watches = append(m.watches, w)
	return w
}

// Update folds a -var-update changelist into the model. Per spec.md §4.7:
// "changelist=[{name=watchN,value,in_scope,...},...]".
func (m *Watches) Update(reply mi.Value) {
	changelist, ok := reply.Field("changelist")
	if !ok {
		return
	}

	for _, elem := range changelist.List {
		name, _ := elem.Field("name")
		idx := m.indexOf(name.String())
		if idx < 0 {
			continue
		}

		if inScope, ok := elem.Field("in_scope"); ok {
			m.watches[idx].InScope = inScope.String() == "true"
		}
		if value, ok := elem.Field("value"); ok {
			m.watches[idx].Changed = m.watches[idx].Value != value.String()
			m.watches[idx].Value = value.String()
		} else {
			m.watches[idx].Changed = false
		}
	}
}

// SetFormat applies a format-change reply (-var-set-format), which carries
// both the new format and the freshly-formatted value.
func (m *Watches) SetFormat(name string, reply mi.Value) {
	idx := m.indexOf(name)
	if idx < 0 {
		return
	}
	if format, ok := reply.Field("format"); ok {
		m.watches[idx].Format = format.String()
	}
	if value, ok := reply.Field("value"); ok {
		m.watches[idx].Value = value.String()
	}
}

// Drop removes a watch by its MI name (after a -var-delete).
func (m *Watches) Drop(name string) {
	idx := m.indexOf(name)
	if idx < 0 {
		return
	}
	m.watches = append(m.watches[:idx], m.watches[idx+1:]...)
}

// All returns every tracked watch.
func (m *Watches) All() []Watch {
	return m.watches
}

func (m *Watches) indexOf(name string) int {
	for i, w := range m.watches {
		if w.Name == name {
			return i
		}
	}
	return -1
}
