// Package natural orders strings the way Windows Explorer orders file names:
// runs of digits compare by numeric value, so "file2" sorts before "file10".
//
// Characters fall into three classes. Digits sort before everything else, and
// letters sort after everything else. Within a class:
//
//   - digit runs compare by value; leading zeros are ignored, except that when
//     two runs have the same value the one with more leading zeros sorts first
//   - letters compare ignoring case, with no case tiebreak: "a" and "A" are
//     equal, and SortFiles and SortDirectories keep such ties in input order
//   - anything else compares by code point
//
// If every compared character ties, the shorter string sorts first.
//
// Comparisons return a negative number, zero, or a positive number. Only the
// sign is meaningful.
package natural

import (
	"strings"
	"unicode"

	"golang.org/x/exp/slices"
)

// Compare a and b as directory names: the whole string is compared at once.
func CompareDirectory(a, b string) int {
	c := comparer{str: [2][]rune{[]rune(a), []rune(b)}}
	len1, len2 := len(c.str[0]), len(c.str[1])

	result := 0
	for result == 0 && c.pos[0] < len1 && c.pos[1] < len2 {
		ch1 := c.str[0][c.pos[0]]
		ch2 := c.str[1][c.pos[1]]

		switch {
		case unicode.IsDigit(ch1):
			if unicode.IsDigit(ch2) {
				result = c.compareNumbers()
			} else {
				result = -1
			}
		case unicode.IsLetter(ch1):
			if unicode.IsLetter(ch2) {
				result = c.compareOther(true)
			} else {
				result = 1
			}
		default:
			switch {
			case unicode.IsDigit(ch2):
				result = 1
			case unicode.IsLetter(ch2):
				result = -1
			default:
				result = c.compareOther(false)
			}
		}
		c.pos[0]++
		c.pos[1]++
	}
	if result == 0 {
		return len1 - len2
	}
	return result
}

// Compare a and b as file names. The base names (everything before the last
// '.') are compared first, and the extensions break ties.
func CompareFile(a, b string) int {
	base1, ext1 := splitExtension(a)
	base2, ext2 := splitExtension(b)
	if result := CompareDirectory(base1, base2); result != 0 {
		return result
	}
	return CompareDirectory(ext1, ext2)
}

// Apply cmp to optional strings. A nil string sorts after every non-nil one.
func ComparePtr(a, b *string, cmp func(a, b string) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return cmp(*a, *b)
}

// Sort names in place as directory names. Names that compare equal keep their
// relative order.
func SortDirectories(names []string) {
	slices.SortStableFunc(names, CompareDirectory)
}

// Sort names in place as file names. Names that compare equal keep their
// relative order.
func SortFiles(names []string) {
	slices.SortStableFunc(names, CompareFile)
}

func splitExtension(name string) (base, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}

// The comparer walks both strings in lockstep. Number comparison consumes a
// whole digit run, so it moves the positions itself; the main loop then steps
// both positions past the last character examined.
type comparer struct {
	str [2][]rune
	pos [2]int
}

func (c *comparer) compareNumbers() int {
	str1, str2 := c.str[0], c.str[1]
	pos1, pos2 := c.pos[0], c.pos[1]

	end1 := pos1 + 1
	for end1 < len(str1) && unicode.IsDigit(str1[end1]) {
		end1++
	}
	fullLen1 := end1 - pos1
	for pos1 < end1 && str1[pos1] == '0' {
		pos1++
	}

	end2 := pos2 + 1
	for end2 < len(str2) && unicode.IsDigit(str2[end2]) {
		end2++
	}
	fullLen2 := end2 - pos2
	for pos2 < end2 && str2[pos2] == '0' {
		pos2++
	}

	// More significant digits is a bigger number
	delta := (end1 - pos1) - (end2 - pos2)
	if delta != 0 {
		c.pos[0], c.pos[1] = pos1, pos2
		return delta
	}
	for pos1 < end1 && pos2 < end2 {
		delta = int(str1[pos1]) - int(str2[pos2])
		pos1++
		pos2++
		if delta != 0 {
			c.pos[0], c.pos[1] = pos1, pos2
			return delta
		}
	}
	// Equal values: leave the positions on the last digit of each run
	c.pos[0], c.pos[1] = pos1-1, pos2-1
	return fullLen2 - fullLen1
}

func (c *comparer) compareOther(letters bool) int {
	ch1 := c.str[0][c.pos[0]]
	ch2 := c.str[1][c.pos[1]]
	if ch1 == ch2 {
		return 0
	}
	if letters {
		ch1 = unicode.ToUpper(ch1)
		ch2 = unicode.ToUpper(ch2)
		if ch1 != ch2 {
			ch1 = unicode.ToLower(ch1)
			ch2 = unicode.ToLower(ch2)
		}
	}
	return int(ch1) - int(ch2)
}
