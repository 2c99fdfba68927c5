package tsv

import "strings"

const (
	sectionSeparator = "\n\n"
	lineSeparator    = "\n"
	fieldSeparator   = "\t"
)

// split cuts s around each occurrence of sep. Unlike strings.Split, an empty
// s yields no elements and a trailing sep does not produce a final empty
// element. Empty elements between two separators are kept.
func split(s, sep string) []string {
	var parts []string
	pos := 0
	for pos < len(s) {
		i := strings.Index(s[pos:], sep)
		if i < 0 {
			parts = append(parts, s[pos:])
			break
		}
		parts = append(parts, s[pos:pos+i])
		pos += i + len(sep)
	}
	return parts
}
