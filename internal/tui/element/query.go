package element

import "strings"

// Walk visits e and its descendants depth-first in document order. Returning
// false from fn skips the node's children.
func Walk(e *Element, fn func(*Element) bool) {
	if e == nil {
		return
	}
	if !fn(e) {
		return
	}
	for _, c := range e.Children {
		Walk(c, fn)
	}
}

// FindAll returns every element matching pred in document order.
func FindAll(root *Element, pred func(*Element) bool) []*Element {
	var out []*Element
	Walk(root, func(e *Element) bool {
		if pred(e) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Find returns the first element matching pred, or nil.
func Find(root *Element, pred func(*Element) bool) *Element {
	var found *Element
	Walk(root, func(e *Element) bool {
		if found != nil {
			return false
		}
		if pred(e) {
			found = e
			return false
		}
		return true
	})
	return found
}

// ByRole returns all elements with the given role.
func ByRole(root *Element, role Role) []*Element {
	return FindAll(root, func(e *Element) bool { return e.Role == role })
}

// ByID returns the element with the given ID, or nil.
func ByID(root *Element, id string) *Element {
	if id == "" {
		return nil
	}
	return Find(root, func(e *Element) bool { return e.ID == id })
}

// Dialog returns the first dialog in the tree, or nil.
func Dialog(root *Element) *Element {
	return Find(root, func(e *Element) bool { return e.Role == RoleDialog })
}

// FocusOrder lists focusable elements in tab order. While a dialog is present
// only its controls are reachable.
func FocusOrder(root *Element) []*Element {
	scope := root
	if d := Dialog(root); d != nil {
		scope = d
	}

	var out []*Element
	Walk(scope, func(e *Element) bool {
		if e.Focusable() {
			out = append(out, e)
			return false // nested content belongs to the focusable
		}
		return true
	})
	return out
}

// TextContent concatenates the visible text of e and its descendants.
func TextContent(e *Element) string {
	var parts []string
	Walk(e, func(n *Element) bool {
		if n.Text != "" {
			parts = append(parts, n.Text)
		}
		return true
	})
	return strings.Join(parts, " ")
}
