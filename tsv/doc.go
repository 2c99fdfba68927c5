// Package tsv provides a forward-only, cursor-based parser for a
// section-structured, tab-delimited text format.
//
// # Format
//
// A document is a sequence of sections separated by a blank line. Each
// section starts with its name on a line by itself, followed by a line of
// tab-separated column names and one or more lines of tab-separated values:
//
//	forecast
//	name	temperature	wind
//	Tonight	48F	12 mph
//	Tomorrow	52F	6 mph
//
//	updated
//	time
//	2022-02-04T13:00:00-08:00
//
// There is no quoting or escaping. A tab, newline or blank line inside a
// value is indistinguishable from a delimiter.
//
// # Cursors
//
// Parsing happens in three stages, each a cursor over the output of the
// previous one:
//
//	┌─────────────┐  Next  ┌─────────────┐  Next  ┌─────────────┐
//	│  Document   │───────▶│   Section   │───────▶│     Row     │
//	│ (sections)  │        │   (rows)    │        │  (fields)   │
//	└─────────────┘        └─────────────┘        └─────────────┘
//	       │                      │                      │
//	       └──────────────────────┴──────────────────────┘
//	                              ▼
//	                       ┌─────────────┐
//	                       │ SharedError │
//	                       └─────────────┘
//
// [Parse] splits the whole text into section texts up front. Each call to
// [Document.Next] parses one section, and each call to [Section.Next] parses
// one row, so sections that are never requested are never validated.
//
// # Errors
//
// All cursors derived from one [Parse] call share a single [SharedError].
// The first structural fault found by any of them is recorded there and is
// never cleared. From then on every accessor on every cursor of that tree
// returns a neutral value ("", nil, false) instead of data:
//
//	doc := tsv.Parse(text)
//	for doc.HasNext() {
//		section := doc.Next()
//		for section.HasNext() {
//			row := section.Next()
//			for i := range section.ColumnNames() {
//				_ = row.Column(i)
//			}
//		}
//	}
//	if doc.HasErr() {
//		return errors.New(doc.Err())
//	}
//
// Calling Next when HasNext reports false is itself an error.
//
// Cursors are not safe for concurrent use. This includes two different
// cursors of the same tree, since they write to the same error cell.
package tsv
