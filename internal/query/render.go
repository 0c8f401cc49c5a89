package query

import (
	"strconv"
	"strings"
)

// NoData is displayed in place of missing values and empty lists.
const NoData = "No data"

// Render formats a result as an indented text block. Nested levels indent by
// two spaces, list values are joined with ", " and list results are numbered.
func Render(res *Result) string {
	if res == nil {
		return ""
	}
	var b strings.Builder
	switch res.Kind {
	case KindFlat:
		writeEntries(&b, res.Entries, 0)
	case KindGroups:
		writeGroups(&b, res.Groups, 0)
	case KindNested:
		for _, n := range res.Nested {
			writeLine(&b, 0, n.Name+":")
			writeGroups(&b, n.Groups, 1)
		}
	case KindList:
		if len(res.Items) == 0 {
			writeLine(&b, 0, "No results found.")
		}
		for i, item := range res.Items {
			writeLine(&b, 0, strconv.Itoa(i+1)+". "+item)
		}
	case KindError:
		writeLine(&b, 0, "error: "+res.Err)
	default:
		writeLine(&b, 0, "(unrecognized result)")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeGroups(b *strings.Builder, groups []Group, indent int) {
	for _, g := range groups {
		writeLine(b, indent, g.Name+":")
		writeEntries(b, g.Summary.Entries(), indent+1)
	}
}

func writeEntries(b *strings.Builder, entries []Entry, indent int) {
	for _, e := range entries {
		writeLine(b, indent, e.Key+": "+displayValue(e))
	}
}

func displayValue(e Entry) string {
	if e.IsList {
		if len(e.List) == 0 {
			return NoData
		}
		return strings.Join(e.List, ", ")
	}
	if e.Value.IsMissing() {
		return NoData
	}
	return e.Value.String()
}

func writeLine(b *strings.Builder, indent int, s string) {
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString(s)
	b.WriteString("\n")
}
