// Package textproc provides text normalization for document vectorization:
// lowercasing, punctuation and digit stripping, stopword removal, and an
// optional light stemmer.
package textproc

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed stopwords.txt
var stopwordsRaw string

// stopwords is the bundled English stopword list (read-only after init).
// Bundling it avoids any runtime corpus download.
var stopwords = loadStopwords()

func loadStopwords() map[string]struct{} {
	words := strings.Fields(stopwordsRaw)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var (
	nonAlnumPattern = regexp.MustCompile(`[^a-z0-9\s]+`)
	digitPattern    = regexp.MustCompile(`[0-9]+`)
)

// Options configures a Normalizer.
type Options struct {
	// Stemming enables light suffix stripping on surviving tokens. It trades
	// a little precision for better recall on morphological variants and is
	// off by default.
	Stemming bool
}

// Normalizer turns raw text into a canonical space-joined token string.
// The zero value is usable and performs no stemming.
type Normalizer struct {
	stemming bool
}

// NewNormalizer builds a Normalizer from the given options.
func NewNormalizer(opts Options) *Normalizer {
	return &Normalizer{stemming: opts.Stemming}
}

// Normalize lowercases the input, strips everything that is not alphanumeric
// or whitespace, removes digit runs, drops stopwords, optionally stems the
// remaining tokens, and joins them with single spaces. Empty input yields an
// empty string; Normalize never fails.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = nonAlnumPattern.ReplaceAllString(text, "")
	text = digitPattern.ReplaceAllString(text, "")

	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if _, isStop := stopwords[tok]; isStop {
			continue
		}
		if n.stemming {
			tok = stem(tok)
			if tok == "" {
				continue
			}
			// Stemming can surface a stopword (e.g. "its" -> "it").
			if _, isStop := stopwords[tok]; isStop {
				continue
			}
		}
		tokens = append(tokens, tok)
	}

	return strings.Join(tokens, " ")
}
