// Package regalias implements the Register-Alias Layer (spec.md GLOSSARY,
// "Register-Alias Layer" bullet): it rewrites SVD peripheral/register
// references inside raw user input - e.g. "print TIM2.CR1" - into
// GDB-evaluable memory expressions before the line is sent to GDB.
//
// The SVD (memory-mapped peripheral) reader itself is named in spec.md's
// Non-goals as an external collaborator with a stated interface only;
// SVDLookup is that interface. Naming follows the teacher's
// coprocessor/developer/dwarf SourceVariable convention (exported,
// self-describing struct fields; no getters for plain data).
package regalias

import (
	"fmt"
	"regexp"
)

// SVDLookup resolves a dotted peripheral.register reference to its
// absolute address and bit width, as decoded from the loaded SVD document.
// Implemented by the (out-of-scope) SVD reader.
type SVDLookup interface {
	Resolve(peripheral, register string) (Register, bool)
}

// Register is the address/width pair an SVDLookup resolves a
// peripheral.register reference to.
type Register struct {
	Address uint32
	Width   int // bits: 8, 16 or 32
}

// reference matches a dotted identifier pair such as "TIM2.CR1" or
// "gpioa.odr" between word boundaries. A longer dotted path is not
// excluded: in "TIM2.CR1.EN" the leading "TIM2.CR1" is matched.
var reference = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\.([A-Za-z_][A-Za-z0-9_]*)\b`)

// Aliaser rewrites peripheral.register references in user input using an
// SVDLookup.
type Aliaser struct {
	svd SVDLookup
}

// New returns an Aliaser resolving references through svd. A nil svd
// causes Rewrite to leave every line unchanged.
func New(svd SVDLookup) *Aliaser {
	return &Aliaser{svd: svd}
}

// Rewrite replaces every peripheral.register reference in line that
// resolves via the Aliaser's SVDLookup with a GDB-evaluable memory
// expression; references that don't resolve (ordinary C struct member
// access, for instance) are left untouched.
func (a *Aliaser) Rewrite(line string) string {
	if a.svd == nil {
		return line
	}

	return reference.ReplaceAllStringFunc(line, func(match string) string {
		sub := reference.FindStringSubmatch(match)
		peripheral, register := sub[1], sub[2]

		reg, ok := a.svd.Resolve(peripheral, register)
		if !ok {
			return match
		}

		return expression(reg)
	})
}

// expression renders a Register as the GDB C-cast memory expression spec.md
// names ("GDB-evaluable expressions"): a pointer-deref cast sized to the
// register's bit width.
func expression(reg Register) string {
	switch reg.Width {
	case 8:
		return fmt.Sprintf("*(unsigned char *)0x%08x", reg.Address)
	case 16:
		return fmt.Sprintf("*(unsigned short *)0x%08x", reg.Address)
	default:
		return fmt.Sprintf("*(unsigned int *)0x%08x", reg.Address)
	}
}
