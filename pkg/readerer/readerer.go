package readerer

import (
	"regexp"
	"strings"

	"github.com/japaniel/wakachi/pkg/dictionary"
	"github.com/japaniel/wakachi/pkg/model"
	"github.com/japaniel/wakachi/pkg/tokenizer"
)

// Version returns the current version of the package.
func Version() string { return "0.2.0" }

// Token represents a single analyzed unit of text, built from a dictionary
// match rather than a statistical tagger.
type Token struct {
	Surface       string   // The text as it appears (e.g. "食べました")
	BaseForm      string   // The dictionary headword (e.g. "食べる")
	Reading       string   // The matched entry's kana reading
	PartsOfSpeech []string // Every JMDict part-of-speech tag across the entry's senses
	// PrimaryPOS stores the first (primary) part of speech if available.
	PrimaryPOS string
}

// Sentence represents a sentence containing tokens.
type Sentence struct {
	Text   string
	Tokens []Token
}

// Analyzer handles text segmentation against a backing dictionary.
type Analyzer struct {
	dict       dictionary.Dictionary
	maxResults int
}

// NewAnalyzer creates a new Analyzer backed by dict. maxResults bounds how
// many dictionary candidates word search considers per position; 0 uses
// tokenizer.DefaultMaxResults.
func NewAnalyzer(dict dictionary.Dictionary, maxResults int) (*Analyzer, error) {
	return &Analyzer{dict: dict, maxResults: maxResults}, nil
}

// Analyze breaks text into tokens with readings and base forms.
func (a *Analyzer) Analyze(text string) ([]Token, error) {
	raw := tokenizer.Tokenize(text, a.dict, a.maxResults)
	result := make([]Token, 0, len(raw))

	for _, tok := range raw {
		if strings.TrimSpace(tok.Text) == "" {
			continue
		}
		result = append(result, toReadererToken(tok))
	}

	return result, nil
}

// AnalyzeDocument splits the text into sentences and tokenizes each sentence.
func (a *Analyzer) AnalyzeDocument(text string) ([]Sentence, error) {
	rawSentences := splitSentences(text)
	var result []Sentence

	for _, s := range rawSentences {
		if strings.TrimSpace(s) == "" {
			continue
		}
		tokens, err := a.Analyze(s)
		if err != nil {
			return nil, err
		}
		result = append(result, Sentence{
			Text:   s,
			Tokens: tokens,
		})
	}
	return result, nil
}

func toReadererToken(tok model.Token) Token {
	out := Token{Surface: tok.Text, BaseForm: tok.Text}

	entry := tok.DictionaryEntry
	if entry == nil {
		return out
	}

	if len(entry.KanjiReadings) > 0 {
		out.BaseForm = entry.KanjiReadings[0].Text
	} else if len(entry.KanaReadings) > 0 {
		out.BaseForm = entry.KanaReadings[0].Text
	}
	if len(entry.KanaReadings) > 0 {
		out.Reading = entry.KanaReadings[0].Text
	}

	out.PartsOfSpeech = entry.AllPOSTags()
	if len(out.PartsOfSpeech) > 0 {
		out.PrimaryPOS = out.PartsOfSpeech[0]
	}

	return out
}

// SplitSentences breaks text into sentences on Japanese sentence-final
// punctuation and newlines, keeping the delimiter with the sentence it ends.
func SplitSentences(text string) []string {
	return splitSentences(text)
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		// Split on common Japanese sentence delimiters and newlines.
		// 。(3002), ！(FF01), ？(FF1F)
		if r == '。' || r == '！' || r == '？' || r == '\n' {
			sentences = append(sentences, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		sentences = append(sentences, current.String())
	}
	return sentences
}

var (
	// (?s) allows dot to match newlines
	// (?i) makes it case-insensitive
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// SanitizeRuby removes ruby text (<rt>...</rt>) and ruby parentheses (<rp>...</rp>)
// from HTML content. This is useful because readability extracts all text including
// furigana, which leads to duplication (e.g. "漢字" becomes "漢字かんじ").
// This function operates on bytes and is generally safe for Shift_JIS as well,
// because <, >, r, t, p are ASCII and < is not a trailing byte in Shift_JIS.
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, []byte{})
	cleaned = reRP.ReplaceAll(cleaned, []byte{})
	return cleaned
}
