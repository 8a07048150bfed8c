package director

import (
	"fmt"
	"strings"

	"github.com/kitround/director/internal/model/persona"
)

// TagMode prefixes message with "[MODE] " when mode names a known specialist,
// matched case-insensitively. Unrecognized or absent modes leave the message
// untouched; forcing a specialist is optional, never an error.
func TagMode(personas persona.Store, message, mode string) string {
	spec, ok := personas.FindByMode(mode)
	if !ok {
		return message
	}
	return fmt.Sprintf("[%s] %s", spec.Mode, message)
}

// NormalizeMode returns the canonical uppercase tag for a known mode, or the
// empty string for anything else.
func NormalizeMode(personas persona.Store, mode string) string {
	spec, ok := personas.FindByMode(strings.TrimSpace(mode))
	if !ok {
		return ""
	}
	return spec.Mode
}
