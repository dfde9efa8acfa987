// Package emotion implements the mood inference pipeline: text
// normalization plus an adapter over the frozen TF-IDF vectorizer and
// linear classifier artifacts produced by the offline training job.
package emotion

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/words"
	"github.com/kljensen/snowball/english"
)

// Normalize prepares raw user text for the vectorizer: lowercase, split on
// Unicode word boundaries, keep alphanumeric non-stopword tokens, stem each
// survivor, and join with single spaces. It never fails; text with no
// surviving tokens normalizes to the empty string.
func Normalize(text string) string {
	seg := words.NewSegmenter([]byte(strings.ToLower(text)))

	var kept []string
	for seg.Next() {
		token := string(seg.Bytes())
		if !isAlphanumeric(token) {
			continue
		}
		if _, skip := stopwords[token]; skip {
			continue
		}
		kept = append(kept, english.Stem(token, false))
	}

	return strings.Join(kept, " ")
}

func isAlphanumeric(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
