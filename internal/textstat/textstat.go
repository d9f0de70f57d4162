// Package textstat provides the shared lexical measurements both scoring
// pipelines are built on: word and sentence splitting, syllable estimation,
// and the Flesch Reading Ease index. Everything here is pure and
// deterministic; both the quality and sentiment analyzers consume this
// package so sentence boundaries never diverge between the two.
package textstat

import (
	"math"
	"regexp"
	"strings"
)

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

const vowels = "aeiouy"

const wordPunctuation = ".,!?;:'\"()-"

// Words splits a script into whitespace-delimited tokens. Punctuation stays
// attached to its token, matching how the rest of the engine counts words.
func Words(script string) []string {
	return strings.Fields(script)
}

// WordCount returns the number of whitespace-delimited tokens.
func WordCount(script string) int {
	return len(strings.Fields(script))
}

// SplitSentences splits on runs of sentence-ending punctuation without
// trimming or discarding segments. Positions reported by the issue detector
// index into this raw split, so blank segments still occupy an index.
func SplitSentences(script string) []string {
	return sentenceEnd.Split(script, -1)
}

// Sentences returns the trimmed, non-empty sentences of a script.
func Sentences(script string) []string {
	parts := sentenceEnd.Split(script, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SentenceCount reports the number of non-empty sentences, with a floor of 1
// for non-empty scripts so averages never divide by zero.
func SentenceCount(script string) int {
	n := len(Sentences(script))
	if n == 0 {
		return 1
	}
	return n
}

// CountSyllables estimates the syllable count of a single word. The
// estimate counts transitions into vowel groups, drops a trailing silent e,
// and restores a syllable for consonant+"le" endings. Result is at least 1.
func CountSyllables(word string) int {
	w := strings.Trim(strings.ToLower(word), wordPunctuation)
	if len(w) <= 3 {
		return 1
	}

	count := 0
	prevVowel := false
	for i := 0; i < len(w); i++ {
		isVowel := strings.IndexByte(vowels, w[i]) >= 0
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}

	if strings.HasSuffix(w, "e") && count > 1 {
		count--
	}
	if strings.HasSuffix(w, "le") && len(w) > 2 && strings.IndexByte(vowels, w[len(w)-3]) < 0 {
		count++
	}

	if count < 1 {
		count = 1
	}
	return count
}

// FleschReadingEase computes the standard readability formula
// 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words),
// clamped to [0,100] and rounded to one decimal. Scripts with no words or
// no sentences score 0.
func FleschReadingEase(script string) float64 {
	words := Words(script)
	sentences := Sentences(script)
	if len(words) == 0 || len(sentences) == 0 {
		return 0.0
	}

	totalSyllables := 0
	for _, w := range words {
		totalSyllables += CountSyllables(w)
	}
	if totalSyllables == 0 {
		return 0.0
	}

	asl := float64(len(words)) / float64(len(sentences))
	asw := float64(totalSyllables) / float64(len(words))
	flesch := 206.835 - 1.015*asl - 84.6*asw

	flesch = math.Round(flesch*10) / 10
	if flesch < 0 {
		return 0.0
	}
	if flesch > 100 {
		return 100.0
	}
	return flesch
}
