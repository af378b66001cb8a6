package readerer

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"github.com/go-shiori/go-readability"

	"github.com/japaniel/wakachi/pkg/dictionary"
	"github.com/japaniel/wakachi/pkg/model"
)

func wordEntry(id string, kanji, kana []string, pos string) *model.WordEntry {
	e := &model.WordEntry{EntryID: id}
	for _, k := range kanji {
		e.KanjiReadings = append(e.KanjiReadings, model.KanjiReading{Text: k})
	}
	for _, k := range kana {
		e.KanaReadings = append(e.KanaReadings, model.KanaReading{Text: k})
	}
	e.Senses = []model.Sense{{POSTags: []string{pos}}}
	return e
}

func fixtureAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	dict := dictionary.NewMemoryDictionary([]*model.WordEntry{
		wordEntry("watashi", []string{"私"}, []string{"わたし"}, "pn"),
		wordEntry("neko", []string{"猫"}, []string{"ねこ"}, "n"),
		wordEntry("de", nil, []string{"で"}, "cop"),
		wordEntry("aru", []string{"有る"}, []string{"ある"}, "v5r-i"),
	})
	a, err := NewAnalyzer(dict, 0)
	if err != nil {
		t.Fatalf("NewAnalyzer failed: %v", err)
	}
	return a
}

const sampleHTML = `<html><head><title>テスト記事</title></head>
<body><article><p>私は猫である。</p></article></body></html>`

func TestVersion(t *testing.T) {
	v := Version()
	if v == "" {
		t.Fatalf("Version() returned empty string")
	}
}

func TestPipelineWithHTML(t *testing.T) {
	fakeURL, _ := url.Parse("http://localhost/sample")
	article, err := readability.FromReader(strings.NewReader(sampleHTML), fakeURL)
	if err != nil {
		t.Fatalf("Readability extraction failed: %v", err)
	}

	if len(strings.TrimSpace(article.TextContent)) == 0 {
		t.Fatal("Extracted text is empty")
	}

	analyzer := fixtureAnalyzer(t)
	tokens, err := analyzer.Analyze(article.TextContent)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(tokens) == 0 {
		t.Fatal("No tokens found from extracted text")
	}

	found := false
	for _, tok := range tokens {
		if tok.Surface == "私" {
			found = true
			if tok.BaseForm != "私" {
				t.Errorf("expected base form 私, got %q", tok.BaseForm)
			}
			if tok.PrimaryPOS != "pn" {
				t.Errorf("expected primary POS pn, got %q", tok.PrimaryPOS)
			}
		}
	}
	if !found {
		t.Error("Expected to find token 私")
	}
}

func TestAnalyzerDeinflection(t *testing.T) {
	analyzer := fixtureAnalyzer(t)

	tokens, err := analyzer.Analyze("あった")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(tokens) == 0 {
		t.Fatal("No tokens found")
	}
	if tokens[0].BaseForm != "有る" {
		t.Errorf("expected あった to deinflect to base form 有る, got %q", tokens[0].BaseForm)
	}
}

func TestAnalyzerUnknownTextFallsBackToSurface(t *testing.T) {
	analyzer := fixtureAnalyzer(t)

	tokens, err := analyzer.Analyze("xyz")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	for _, tok := range tokens {
		if tok.BaseForm != tok.Surface {
			t.Errorf("expected unmatched token base form to fall back to its surface, got %+v", tok)
		}
		if tok.PrimaryPOS != "" {
			t.Errorf("expected no POS for an unmatched token, got %q", tok.PrimaryPOS)
		}
	}
}

func TestDocumentSegmentation(t *testing.T) {
	analyzer := fixtureAnalyzer(t)

	sentences, err := analyzer.AnalyzeDocument("私は猫である。今日は晴れです。")
	if err != nil {
		t.Fatalf("AnalyzeDocument failed: %v", err)
	}

	if len(sentences) < 2 {
		t.Errorf("Expected multiple sentences, got %d", len(sentences))
	}
	for _, s := range sentences {
		if len(s.Tokens) == 0 {
			t.Errorf("Sentence has no tokens: %q", s.Text)
		}
	}
}

func TestReadabilityFuriganaHandling(t *testing.T) {
	const furiganaHTML = `<html><body><article><p><ruby>漢字<rt>かんじ</rt></ruby>です。</p></article></body></html>`

	sanitized := SanitizeRuby([]byte(furiganaHTML))

	fakeURL, _ := url.Parse("http://localhost/furigana")
	article, err := readability.FromReader(bytes.NewReader(sanitized), fakeURL)
	if err != nil {
		t.Fatalf("Readability extraction failed: %v", err)
	}

	if strings.Contains(article.TextContent, "漢字かんじ") {
		t.Errorf("Readability output still contains furigana! content: %q", article.TextContent)
	}
}

func TestSanitizeRuby(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple Ruby",
			input:    "<ruby>漢字<rt>かんじ</rt></ruby>",
			expected: "<ruby>漢字</ruby>",
		},
		{
			name:     "Ruby with RP",
			input:    "<ruby>漢字<rp>(</rp><rt>かんじ</rt><rp>)</rp></ruby>",
			expected: "<ruby>漢字</ruby>",
		},
		{
			name:     "Multiple Ruby",
			input:    "<ruby>私<rt>わたし</rt></ruby>は<ruby>猫<rt>ねこ</rt></ruby>である",
			expected: "<ruby>私</ruby>は<ruby>猫</ruby>である",
		},
		{
			name:     "Attributes in tags",
			input:    "<ruby class='test'>漢字<rt class='reading'>かんじ</rt></ruby>",
			expected: "<ruby class='test'>漢字</ruby>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeRuby([]byte(tt.input))
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
		})
	}
}
