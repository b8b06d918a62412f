package class

import "strings"

// Visibility is the access marker rendered in front of a class member.
// The zero value is [VisibilityPublic].
type Visibility uint8

const (
	// VisibilityPublic renders as "+".
	VisibilityPublic Visibility = iota
	// VisibilityPrivate renders as "-".
	VisibilityPrivate
	// VisibilityProtected renders as "#".
	VisibilityProtected
	// VisibilityPackage renders as "~".
	VisibilityPackage
)

var visibilityNames = [...]string{
	VisibilityPublic:    "+",
	VisibilityPrivate:   "-",
	VisibilityProtected: "#",
	VisibilityPackage:   "~",
}

// String returns the Mermaid visibility marker, e.g. "#".
func (v Visibility) String() string {
	if int(v) < len(visibilityNames) {
		return visibilityNames[v]
	}
	return visibilityNames[VisibilityPublic]
}

// ParseVisibility resolves a visibility marker or its spelled-out name
// ("public", "private", "protected", "package"). Matching is
// case-insensitive. The second return value reports whether the name
// was recognized.
func ParseVisibility(name string) (Visibility, bool) {
	switch strings.ToLower(name) {
	case "+", "public":
		return VisibilityPublic, true
	case "-", "private":
		return VisibilityPrivate, true
	case "#", "protected":
		return VisibilityProtected, true
	case "~", "package":
		return VisibilityPackage, true
	}
	return VisibilityPublic, false
}
