// Package segment splits raw documents into paragraphs and sentences.
package segment

import (
	"strings"
	"unicode"
)

// terminal reports whether r ends a sentence. Covers the halfwidth
// terminators and their fullwidth equivalents common in Japanese text.
func terminal(r rune) bool {
	switch r {
	case '。', '．', '.', '!', '?', '！', '？':
		return true
	}
	return false
}

// Sentences splits text into sentences on runs of whitespace that follow
// terminal punctuation. The punctuation stays attached to the preceding
// sentence, and a run of terminators ("……!?") stays together. Japanese
// text with no whitespace between sentences also splits: the boundary is
// the first non-terminator rune after a terminator. Pieces are trimmed
// and empty pieces dropped, so blank input yields a nil slice and input
// without any terminator yields exactly one trimmed sentence.
func Sentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		current.Reset()
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	prevTerminal := false
	for _, r := range text {
		if prevTerminal && !terminal(r) {
			flush()
			prevTerminal = false
		}
		if unicode.IsSpace(r) && current.Len() == 0 {
			continue
		}
		current.WriteRune(r)
		if terminal(r) {
			prevTerminal = true
		}
	}
	flush()

	return sentences
}

// Paragraphs splits text into one entry per non-blank line, in document
// order. Blank lines are dropped and do not leave gaps: the paragraph
// index implied by slice position is dense. Windows line endings are
// tolerated.
func Paragraphs(text string) []string {
	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paragraphs = append(paragraphs, line)
	}
	return paragraphs
}
