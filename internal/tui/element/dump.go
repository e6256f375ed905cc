package element

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dump writes an indented outline of the tree, one element per line.
// Fragments are transparent and do not add a level.
func Dump(w io.Writer, root *Element) error {
	return dump(w, root, 0)
}

func dump(w io.Writer, e *Element, depth int) error {
	if e == nil {
		return nil
	}

	if e.Role != RoleFragment {
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), describe(e)); err != nil {
			return err
		}
		depth++
	}

	for _, c := range e.Children {
		if err := dump(w, c, depth); err != nil {
			return err
		}
	}
	return nil
}

func describe(e *Element) string {
	var b strings.Builder
	b.WriteString(string(e.Role))
	if e.Role == RoleHeading && e.Level > 0 {
		b.WriteString(strconv.Itoa(e.Level))
	}
	if name := e.Name(); name != "" {
		b.WriteString(" " + strconv.Quote(name))
	}
	if e.ID != "" {
		b.WriteString(" #" + e.ID)
	}
	if e.Href != "" {
		b.WriteString(" -> " + e.Href)
	}
	if e.LabelledBy != "" {
		b.WriteString(" labelledby=" + e.LabelledBy)
	}
	if e.Disabled {
		b.WriteString(" disabled")
	}
	return b.String()
}
