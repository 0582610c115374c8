package model

import (
	"strconv"

	"github.com/bmdebug/bmdebug/mi"
)

// CortexMRegisterNames is the fixed, architecture-specific register-name
// table for ARM Cortex-M targets named in spec.md §4.7: r0-r12, sp, lr, pc,
// indexed by the register number GDB reports in -data-list-register-values.
var CortexMRegisterNames = []string{
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	"r8", "r9", "r10", "r11", "r12", "sp", "lr", "pc",
}

// Register is one CPU register's last-known value.
type Register struct {
	Number  int
	Name    string
	Value   string
	Changed bool
}

// Registers is the Register Model: a fixed-size table addressed by GDB's
// register number, with the Cortex-M name table substituted in where
// known.
type Registers struct {
	names []string
	regs  []Register
}

// NewRegisters returns a Registers model using the given architecture
// register-name table (see CortexMRegisterNames).
func NewRegisters(names []string) *Registers {
	return &Registers{names: names}
}

// Update folds a -data-list-register-values reply into the model. Per
// spec.md §4.7: "register-values=[{number,value},...]".
func (m *Registers) Update(reply mi.Value) {
	values, ok := reply.Field("register-values")
	if !ok {
		return
	}

	byNumber := make(map[int]string, len(values.List))
	for _, elem := range values.List {
		number, _ := elem.Field("number")
		value, _ := elem.Field("value")
		n, err := strconv.Atoi(number.String())
		if err != nil {
			continue
		}
		byNumber[n] = value.String()
	}

	n := len(m.names)
	if len(m.regs) < n {
		regs := make([]Register, n)
		copy(regs, m.regs)
		for i := len(m.regs); i < n; i++ {
			regs[i] = Register{Number: i, Name: m.names[i]}
		}
		m.regs = regs
	}

	for i := range m.regs {
		v, ok := byNumber[i]
		if !ok {
			continue
		}
		m.regs[i].Changed = m.regs[i].Value != v
		m.regs[i].Value = v
	}
}

// All returns every known register, in number order.
func (m *Registers) All() []Register {
	return m.regs
}

// ByName finds a register by its architecture name (case-sensitive,
// lowercase - eg. "pc", "sp").
func (m *Registers) ByName(name string) (Register, bool) {
	for _, r := range m.regs {
		if r.Name == name {
			return r, true
		}
	}
	return Register{}, false
}
