package fileutil

import (
	"strings"
	"unicode/utf8"
)

// Characters that can't appear in a file name on at least one common file
// system.
const IllegalCharacters = "\x00\\/:*?\"<>|"

// Longest file name, in characters, that SanitizeName produces.
const MaxNameLength = 255

func HasIllegalCharacters(name string) bool {
	return strings.ContainsAny(name, IllegalCharacters)
}

func StripIllegal(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(IllegalCharacters, r) {
			return -1
		}
		return r
	}, name)
}

// What SanitizeName had to change.
type Report struct {
	IllegalRemoved bool
	Truncated      bool
}

// Turn user input into a usable file name. Illegal characters are removed.
// If ext is not empty, the name is made to end in "."+ext (compared case
// insensitively), appending it if needed. Finally the name is shortened to
// MaxNameLength characters, cutting from the end of the base name so the
// extension survives.
//
// An empty name is returned unchanged.
func SanitizeName(name, ext string) (string, Report) {
	var report Report
	if name == "" {
		return "", report
	}
	if HasIllegalCharacters(name) {
		name = StripIllegal(name)
		report.IllegalRemoved = true
	}

	if ext == "" {
		if utf8.RuneCountInString(name) > MaxNameLength {
			name = string([]rune(name)[:MaxNameLength])
			report.Truncated = true
		}
		return name, report
	}

	suffix := "." + ext
	base := name
	if n := len(name) - len(suffix); n >= 0 && strings.EqualFold(name[n:], suffix) {
		// Keep the user's casing of the extension
		base, suffix = name[:n], name[n:]
	}

	keep := MaxNameLength - utf8.RuneCountInString(suffix)
	if keep < 0 {
		keep = 0
	}
	if runes := []rune(base); len(runes) > keep {
		base = string(runes[:keep])
		report.Truncated = true
	}
	return base + suffix, report
}
