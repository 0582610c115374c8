package model

import (
	"strconv"
	"strings"

	"github.com/bmdebug/bmdebug/mi"
)

// MemoryRow is one addressed row of bytes from a -data-read-memory reply.
type MemoryRow struct {
	Address string
	Bytes   []byte
}

// Memory is the Memory Model: the buffer produced by the most recent
// -data-read-memory request, kept as a flat ordered row list the way the
// teacher's disassembly/symbols table is kept as a flat address-ordered
// table.
type Memory struct {
	rows []MemoryRow
}

// Update replaces the buffer with rows parsed from a -data-read-memory
// reply. Per spec.md §4.7: "yields rows of bytes/words; parse into the
// Memory model's buffer." GDB's MI reply shape is
// memory=[{addr="0x...",data=["0x12","0x34",...]},...].
func (m *Memory) Update(reply mi.Value) {
	memory, ok := reply.Field("memory")
	if !ok {
		m.rows = nil
		return
	}

	rows := make([]MemoryRow, 0, len(memory.List))
	for _, elem := range memory.List {
		addr, _ := elem.Field("addr")
		row := MemoryRow{Address: addr.String()}

		if data, ok := elem.Field("data"); ok {
			row.Bytes = make([]byte, 0, len(data.List))
			for _, b := range data.List {
				s := strings.TrimPrefix(b.String(), "0x")
				v, err := strconv.ParseUint(s, 16, 8)
				if err != nil {
					continue
				}
				row.Bytes = append(row.Bytes, byte(v))
			}
		}

		rows = append(rows, row)
	}

	m.rows = rows
}

// Rows returns every row of the current buffer, in reply order.
func (m *Memory) Rows() []MemoryRow {
	return m.rows
}
