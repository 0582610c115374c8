package source

// Files is the Source Model proper: the set of known source files keyed
// by base name, plus the array-index GDB uses in its `files=[...]` reply
// (spec.md §4.7's Sources extractor: "multiple indices may map to one
// file", eg. a header included from several translation units).
//
// Grounded on the teacher's disassembly/symbols/table.go byAddr/index
// pair, reworked from address-keying to name-keying since GDB's file list
// has no notion of address until a line table is consulted.
type Files struct {
	byName map[string]*File
	byIdx  map[int]*File
}

// Add registers (or returns the existing) File for name/fullname, and
// associates GDB's array index with it. Per spec.md §4.7: "Each item is
// added to the Source Model, associating the array-index GDB uses with
// the underlying file object (multiple indices may map to one file)."
func (fs *Files) Add(idx int, name, fullname string) *File {
	if fs.byName == nil {
		fs.byName = make(map[string]*File)
	}
	if fs.byIdx == nil {
		fs.byIdx = make(map[int]*File)
	}

	f, ok := fs.byName[name]
	if !ok {
		f = &File{Name: name, Fullname: fullname}
		fs.byName[name] = f
	}
	fs.byIdx[idx] = f

	return f
}

// ByName looks up a file by its base name.
func (fs *Files) ByName(name string) (*File, bool) {
	f, ok := fs.byName[name]
	return f, ok
}

// ByIndex looks up a file by GDB's reply array index.
func (fs *Files) ByIndex(idx int) (*File, bool) {
	f, ok := fs.byIdx[idx]
	return f, ok
}

// All returns every known file, in no particular order.
func (fs *Files) All() []*File {
	out := make([]*File, 0, len(fs.byName))
	for _, f := range fs.byName {
		out = append(out, f)
	}
	return out
}
