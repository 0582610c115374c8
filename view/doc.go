// Package view adapts the Source Model (package source) to the cursor
// operations the Command Interceptor drives directly (spec.md §4.5's
// list/find/assembly handlers - see interceptor.SourceView). Nothing in
// package source itself has a notion of "the current file" or "the
// current line"; that is purely a concern of the interactive front-end,
// so it lives here rather than being folded into the Source Model.
package view
