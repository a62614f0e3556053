// Package charutil classifies runes by the Unicode block they belong to.
package charutil

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

func block(lo, hi rune) *unicode.RangeTable {
	if hi <= 0xFFFF {
		return &unicode.RangeTable{R16: []unicode.Range16{{Lo: uint16(lo), Hi: uint16(hi), Stride: 1}}}
	}
	return &unicode.RangeTable{R32: []unicode.Range32{{Lo: uint32(lo), Hi: uint32(hi), Stride: 1}}}
}

// Unicode blocks.
var (
	GeneralPunctuation                   = block(0x2000, 0x206F)
	CJKRadicalsSupplement                = block(0x2E80, 0x2EFF)
	CJKSymbolsAndPunctuation             = block(0x3000, 0x303F)
	CJKStrokes                           = block(0x31C0, 0x31EF)
	EnclosedCJKLettersAndMonths          = block(0x3200, 0x32FF)
	CJKCompatibility                     = block(0x3300, 0x33FF)
	CJKUnifiedIdeographsExtensionA       = block(0x3400, 0x4DBF)
	CJKUnifiedIdeographs                 = block(0x4E00, 0x9FFF)
	CJKCompatibilityIdeographs           = block(0xF900, 0xFAFF)
	CJKCompatibilityForms                = block(0xFE30, 0xFE4F)
	HalfwidthAndFullwidthForms           = block(0xFF00, 0xFFEF)
	CJKUnifiedIdeographsExtensionB       = block(0x20000, 0x2A6DF)
	CJKUnifiedIdeographsExtensionC       = block(0x2A700, 0x2B73F)
	CJKUnifiedIdeographsExtensionD       = block(0x2B740, 0x2B81F)
	CJKCompatibilityIdeographsSupplement = block(0x2F800, 0x2FA1F)
)

var chinese = rangetable.Merge(
	CJKUnifiedIdeographs,
	CJKCompatibilityIdeographs,
	CJKUnifiedIdeographsExtensionA,
	CJKUnifiedIdeographsExtensionB,
	CJKSymbolsAndPunctuation,
	HalfwidthAndFullwidthForms,
	GeneralPunctuation,
)

var cjk = rangetable.Merge(
	CJKSymbolsAndPunctuation,
	EnclosedCJKLettersAndMonths,
	CJKCompatibility,
	CJKUnifiedIdeographs,
	CJKCompatibilityIdeographs,
	CJKCompatibilityForms,
	CJKRadicalsSupplement,
	CJKUnifiedIdeographsExtensionA,
	CJKUnifiedIdeographsExtensionB,
	CJKCompatibilityIdeographsSupplement,
	CJKStrokes,
	CJKUnifiedIdeographsExtensionC,
	CJKUnifiedIdeographsExtensionD,
)

// IsChinese reports whether r is a Han ideograph or the punctuation and
// full-width forms that appear in Chinese text.
func IsChinese(r rune) bool {
	return unicode.Is(chinese, r)
}

// IsCJK reports whether r falls in one of the CJK ideograph, symbol,
// compatibility or stroke blocks.
func IsCJK(r rune) bool {
	return unicode.Is(cjk, r)
}

func IsGeneralPunctuation(r rune) bool {
	return unicode.Is(GeneralPunctuation, r)
}

func IsHalfwidthAndFullwidthForms(r rune) bool {
	return unicode.Is(HalfwidthAndFullwidthForms, r)
}
