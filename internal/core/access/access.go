// Package access decides which suite tools a user may open.
package access

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/rubiqs/suite/pkg/slug"
)

// Tool identifiers used by routes and dashboard tiles.
const (
	ToolGrader     = "grader"
	ToolNotes      = "notes"
	ToolChat       = "chat"
	ToolMath       = "math"
	ToolSpeak      = "speak"
	ToolDiscussion = "discussion"
)

// Policy reports whether a tool is available.
type Policy interface {
	HasCapability(tool string) bool
}

// PolicyFunc adapts a plain function to Policy.
type PolicyFunc func(tool string) bool

// HasCapability calls f(tool).
func (f PolicyFunc) HasCapability(tool string) bool { return f(tool) }

// AllowAll grants every tool.
func AllowAll() Policy { return PolicyFunc(func(string) bool { return true }) }

// DenyAll grants nothing.
func DenyAll() Policy { return PolicyFunc(func(string) bool { return false }) }

// Grants is a configurable capability set.
type Grants struct {
	Superuser bool
	LoggedIn  bool
	Tools     map[string]bool
	Allow     []string // doublestar patterns matched against the tool slug
}

// HasCapability applies, in order: superuser bypass, empty tool falls back to
// the logged-in flag, explicit tool entries, then allow patterns. An explicit
// false entry wins over a matching pattern.
func (g Grants) HasCapability(tool string) bool {
	if g.Superuser {
		return true
	}
	if tool == "" {
		return g.LoggedIn
	}

	id := slug.Make(tool)
	for name, granted := range g.Tools {
		if slug.Make(name) == id {
			return granted
		}
	}

	for _, pattern := range g.Allow {
		if ok, err := doublestar.Match(pattern, id); err == nil && ok {
			return true
		}
	}

	return false
}
