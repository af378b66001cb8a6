package normalize

import (
	"testing"
	"unicode/utf16"
)

func TestWidthFoldDigits(t *testing.T) {
	norm, _ := Normalize("2026年", Options{FullWidthDigits: true, StripZWNJ: false})
	want := "２０２６年"
	if norm != want {
		t.Fatalf("got %q, want %q", norm, want)
	}
}

func TestWidthFoldDisabled(t *testing.T) {
	norm, _ := Normalize("2026年", Options{FullWidthDigits: false, StripZWNJ: false})
	if norm != "2026年" {
		t.Fatalf("got %q", norm)
	}
}

func TestOffsetMapRoundTrip(t *testing.T) {
	cases := []string{"", "学生です", "2026年", "タンパク質"}
	for _, in := range cases {
		_, m := Normalize(in, DefaultOptions())
		wantLen := UTF16Len(widthFoldOnly(in)) + 1
		if len(m) != wantLen {
			t.Errorf("Normalize(%q): offset map len = %d, want %d", in, len(m), wantLen)
		}
	}
}

func widthFoldOnly(s string) string {
	return widthFoldDigits(s)
}

func TestZWNJStrip(t *testing.T) {
	withZWNJ := "学" + string(rune(0x200C)) + "生"
	out, m := Normalize(withZWNJ, Options{FullWidthDigits: true, StripZWNJ: true})
	if out != "学生" {
		t.Fatalf("got %q, want %q", out, "学生")
	}
	if len(m) != UTF16Len(out)+1 {
		t.Fatalf("offset map len = %d, want %d", len(m), UTF16Len(out)+1)
	}
}

func TestOffsetFaithfulness(t *testing.T) {
	original := "私は2026年の学生です"
	normalized, m := Normalize(original, DefaultOptions())
	origUnits := utf16.Encode([]rune(widthFoldDigits(original)))
	normUnits := utf16.Encode([]rune(normalized))
	if len(m) != len(normUnits)+1 {
		t.Fatalf("offset map length mismatch: %d vs %d", len(m), len(normUnits)+1)
	}
	for i := range normUnits {
		if m[i] < 0 || m[i] > len(origUnits) {
			t.Fatalf("offset map entry %d out of range: %d", i, m[i])
		}
	}
	if m[len(m)-1] != len(origUnits) {
		t.Fatalf("sentinel = %d, want %d", m[len(m)-1], len(origUnits))
	}
}

func TestKanaToHiraganaStability(t *testing.T) {
	inputs := []string{"タンパク", "ワヲン", "ー", "こんにちは"}
	for _, in := range inputs {
		once := KanaToHiragana(in)
		twice := KanaToHiragana(once)
		if once != twice {
			t.Errorf("KanaToHiragana not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestKanaToHiraganaChoonUnaffected(t *testing.T) {
	got := KanaToHiragana("パークー")
	want := "ぱーくー"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
