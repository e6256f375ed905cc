package router

// History is the stack of visited paths. The first entry is never popped.
type History struct {
	items []string
}

// NewHistory starts a history at path.
func NewHistory(path string) *History {
	return &History{items: []string{path}}
}

// Push records a visit. Re-visiting the current path is a no-op.
func (h *History) Push(path string) {
	if h.Current() == path {
		return
	}
	h.items = append(h.items, path)
}

// Back drops the current entry and returns the previous one. ok is false at
// the first entry.
func (h *History) Back() (path string, ok bool) {
	if len(h.items) <= 1 {
		return h.Current(), false
	}
	h.items = h.items[:len(h.items)-1]
	return h.Current(), true
}

// Current returns the path on top of the stack.
func (h *History) Current() string {
	if len(h.items) == 0 {
		return ""
	}
	return h.items[len(h.items)-1]
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.items)
}
