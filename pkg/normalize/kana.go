package normalize

// KanaToHiragana lowers katakana code points to their hiragana equivalent.
// The long-vowel mark (ー, U+30FC) and anything outside the katakana block
// pass through unchanged.
func KanaToHiragana(text string) string {
	runes := []rune(text)
	for i, r := range runes {
		switch {
		case r >= 0x30A1 && r <= 0x30F6:
			runes[i] = r - 0x60
		case r == 0x30F7:
			runes[i] = 'わ'
		case r == 0x30F8:
			runes[i] = 'ゐ'
		case r == 0x30F9:
			runes[i] = 'ゑ'
		case r == 0x30FA:
			runes[i] = 'を'
		}
	}
	return string(runes)
}
