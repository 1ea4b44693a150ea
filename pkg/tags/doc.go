// Package tags reads and validates tag documents.
//
// A tag document is the input to tagflow: an ordered list of tags (the chips
// to lay out) plus optional layout settings. Three encodings are supported:
//
//   - TOML, with a [layout] table and [[tag]] entries
//   - JSON, with "layout" and "tags" keys
//   - plain text, one label per line ("#" starts a comment)
//
// Example TOML document:
//
//	[layout]
//	width = 480
//	alignment = "center"
//	horizontal_spacing = 8
//	vertical_spacing = 8
//
//	[[tag]]
//	label = "Go"
//	url = "https://go.dev"
//	color = "#00ADD8"
//
//	[[tag]]
//	label = "Rust"
//
// Use [ReadFile] to load a document by extension, or [Parse] with an explicit
// [Format]. Documents are normalized after parsing: missing IDs are derived
// from labels and made unique, and [Set.Validate] is applied.
package tags
