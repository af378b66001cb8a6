package variation

var yoonTrailing = map[rune]bool{
	'ゃ': true, 'ゅ': true, 'ょ': true,
}

var yoonLeading = map[rune]bool{
	'き': true, 'し': true, 'ち': true, 'に': true, 'ひ': true,
	'み': true, 'り': true, 'ぎ': true, 'じ': true, 'び': true, 'ぴ': true,
}

// EndsInYoon reports whether text ends in a palatalized digraph (a small
// ゃ/ゅ/ょ preceded by one of the consonant+i mora it can attach to). The
// word-search loop uses this to back off by two code units instead of one,
// so it never splits the digraph in half.
func EndsInYoon(text string) bool {
	runes := []rune(text)
	if len(runes) < 2 {
		return false
	}
	last := runes[len(runes)-1]
	prev := runes[len(runes)-2]
	return yoonTrailing[last] && yoonLeading[prev]
}
