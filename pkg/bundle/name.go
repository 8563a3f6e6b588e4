package bundle

import (
	"strings"

	"golang.org/x/text/language"
)

// NameMangler maps a base name and a locale to a concrete bundle name. It
// must be a pure function: deterministic, no I/O, no side effects.
type NameMangler func(baseName string, tag language.Tag) string

// DefaultMangler implements the conventional underscore suffixing: the tag's
// subtags are appended to the base name with underscores, so "messages" with
// de-DE becomes "messages_de_DE". The undetermined tag maps to the base name
// alone.
func DefaultMangler(baseName string, tag language.Tag) string {
	if tag.IsRoot() {
		return baseName
	}
	return baseName + "_" + strings.ReplaceAll(tag.String(), "-", "_")
}
