package source

import "github.com/bmdebug/bmdebug/mi"

// ExtractSources folds a `-file-list-exec-source-files` reply
// (files=[{file="…",fullname="…"},…]) into the Source Model. Per
// spec.md §4.7: "Each item is added to the Source Model, associating the
// array-index GDB uses with the underlying file object (multiple indices
// may map to one file)."
func ExtractSources(fs *Files, reply mi.Value) {
	files, ok := reply.Field("files")
	if !ok {
		return
	}

	for i, elem := range files.List {
		file, _ := elem.Field("file")
		fullname, _ := elem.Field("fullname")
		fs.Add(i, file.String(), fullname.String())
	}
}
