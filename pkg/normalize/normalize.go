// Package normalize canonicalizes raw input text before the tokenizer's
// word-search loop runs over it, and tracks the UTF-16 offset of every
// normalized code unit back into the original input so that emitted tokens
// can be reported in the caller's own coordinate system.
package normalize

import (
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// Options controls which normalization passes run.
type Options struct {
	FullWidthDigits bool
	StripZWNJ       bool
}

// DefaultOptions matches the spec's documented defaults.
func DefaultOptions() Options {
	return Options{FullWidthDigits: true, StripZWNJ: true}
}

const zwnj rune = 0x200C

// widthFoldDigits maps each ASCII digit to its full-width counterpart,
// leaving every other rune untouched. Digit and full-width-digit forms are
// both single UTF-16 code units, so this pass never shifts offsets.
func widthFoldDigits(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= '0' && r <= '9' {
			runes[i] = r - '0' + 0xFF10
		}
	}
	return string(runes)
}

// segment is a maximal NFC composition unit: a starter rune followed by zero
// or more combining marks, per the Unicode canonical-combining-class
// boundary rule NFC itself composes within.
type segment struct {
	text        string
	utf16Offset int // offset of this segment's first code unit, in the pre-NFC (width-folded) string
}

func segmentsOf(s string) []segment {
	var segs []segment
	var cur []byte
	curOffset := 0
	utf16Cursor := 0
	flush := func() {
		if len(cur) > 0 {
			segs = append(segs, segment{text: string(cur), utf16Offset: curOffset})
			cur = cur[:0]
		}
	}
	buf := []byte(s)
	for len(buf) > 0 {
		p := norm.NFC.Properties(buf)
		size := p.Size()
		if size == 0 {
			// Defensive: shouldn't happen on well-formed UTF-8, but avoid
			// an infinite loop if it ever does.
			size = 1
		}
		runeBytes := buf[:size]
		if p.CCC() == 0 && len(cur) > 0 {
			flush()
			curOffset = utf16Cursor
		} else if len(cur) == 0 {
			curOffset = utf16Cursor
		}
		cur = append(cur, runeBytes...)
		utf16Cursor += utf16UnitsIn(runeBytes)
		buf = buf[size:]
	}
	flush()
	return segs
}

func utf16UnitsIn(b []byte) int {
	n := 0
	for _, r := range string(b) {
		n += len(utf16.Encode([]rune{r}))
	}
	return n
}

// Normalize canonicalizes input and returns the normalized text together
// with its offset map: offsetMap[i] is the UTF-16 code unit offset into the
// original input string corresponding to normalized code unit i, and
// len(offsetMap) == utf16 length of normalized + 1 (trailing sentinel).
func Normalize(input string, opts Options) (string, []int) {
	folded := input
	if opts.FullWidthDigits {
		folded = widthFoldDigits(folded)
	}

	foldedUTF16Len := len(utf16.Encode([]rune(folded)))

	segs := segmentsOf(folded)

	var composedUnits []uint16
	var preMap []int
	for _, seg := range segs {
		composed := norm.NFC.String(seg.text)
		units := utf16.Encode([]rune(composed))
		for range units {
			preMap = append(preMap, seg.utf16Offset)
		}
		composedUnits = append(composedUnits, units...)
	}
	preMap = append(preMap, foldedUTF16Len)

	if !opts.StripZWNJ {
		return string(utf16.Decode(composedUnits)), preMap
	}

	var keptUnits []uint16
	var keptMap []int
	lastKeptPreIndex := -1
	for i, cu := range composedUnits {
		if rune(cu) == zwnj {
			continue
		}
		keptUnits = append(keptUnits, cu)
		keptMap = append(keptMap, preMap[i])
		lastKeptPreIndex = i
	}
	var sentinel int
	if lastKeptPreIndex >= 0 {
		sentinel = preMap[lastKeptPreIndex+1]
	} else if len(preMap) > 0 {
		sentinel = preMap[0]
	}
	keptMap = append(keptMap, sentinel)

	return string(utf16.Decode(keptUnits)), keptMap
}

// OffsetMapShift returns a view of m as if it began at normalized position
// p: shift(m, p)[i] == m[p+i]. For p past the end of m it returns only m's
// final (sentinel) entry.
func OffsetMapShift(m []int, p int) []int {
	if p >= len(m) {
		return []int{m[len(m)-1]}
	}
	return m[p:]
}

// UTF16Len returns the number of UTF-16 code units s would occupy.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// SliceUTF16 returns the substring of s spanning UTF-16 code units [start,
// end), the same coordinate system as Token.Start/End. Matches the contract
// that positions are UTF-16 offsets regardless of the host language's
// native string representation.
func SliceUTF16(s string, start, end int) string {
	units := utf16.Encode([]rune(s))
	if start < 0 {
		start = 0
	}
	if end > len(units) {
		end = len(units)
	}
	if start >= end {
		return ""
	}
	return string(utf16.Decode(units[start:end]))
}
