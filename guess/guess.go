// Package guess normalizes free-text chord names and judges them against a
// target chord, tolerating alternate spellings and enharmonic equivalents
// (C# vs Db).
package guess

import (
	"fmt"
	"strings"

	"github.com/beeckusu/project-music-ear-training-sub000/model"
)

// rootEquivalents maps every flat spelling and the four theoretical
// enharmonics onto the canonical sharp/natural spelling. The unicode-flat
// variants are generated at init.
var rootEquivalents = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
	"Cb": "B",
	"Fb": "E",
	"B#": "C",
	"E#": "F",
}

// suffixGroups lists every accepted spelling per canonical suffix. Alternate
// casings are generated at init; explicit entries win over generated ones,
// which is what keeps "M" (major) and "m" (minor) apart.
var suffixGroups = []struct {
	canonical string
	aliases   []string
}{
	{"", []string{"major", "maj", "M"}},
	{"m", []string{"minor", "min", "m", "-"}},
	{"dim", []string{"dim", "diminished", "°", "o"}},
	{"aug", []string{"aug", "augmented", "+"}},
	{"sus2", []string{"sus2"}},
	{"sus4", []string{"sus4", "sus"}},
	{"maj7", []string{"maj7", "major7", "M7", "ma7", "Δ", "Δ7"}},
	{"m7", []string{"m7", "min7", "minor7", "-7"}},
	{"7", []string{"7", "dom7", "dominant7"}},
	{"m7♭5", []string{"m7b5", "m7♭5", "min7b5", "-7b5", "b5", "♭5", "ø", "ø7", "halfdim", "halfdim7", "halfdiminished7"}},
	{"dim7", []string{"dim7", "diminished7", "°7", "o7"}},
	{"maj9", []string{"maj9", "major9", "M9"}},
	{"m9", []string{"m9", "min9", "minor9", "-9"}},
	{"9", []string{"9", "dom9", "dominant9"}},
	{"maj11", []string{"maj11", "major11", "M11"}},
	{"m11", []string{"m11", "min11", "minor11", "-11"}},
	{"11", []string{"11", "dom11", "dominant11"}},
	{"maj13", []string{"maj13", "major13", "M13"}},
	{"13", []string{"13", "dom13", "dominant13"}},
	{"add9", []string{"add9", "added9", "add2"}},
	{"add11", []string{"add11", "added11", "add4"}},
}

var suffixAliases = map[string]string{}

func init() {
	// explicit spellings first so they beat generated casing variants
	for _, group := range suffixGroups {
		for _, alias := range group.aliases {
			suffixAliases[alias] = group.canonical
		}
	}
	for _, group := range suffixGroups {
		for _, alias := range group.aliases {
			for _, variant := range casingVariants(alias) {
				if _, taken := suffixAliases[variant]; !taken {
					suffixAliases[variant] = group.canonical
				}
			}
		}
	}
}

func casingVariants(alias string) []string {
	lower := strings.ToLower(alias)
	upper := strings.ToUpper(alias)
	capitalized := lower
	if len(lower) > 0 {
		capitalized = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return []string{lower, upper, capitalized}
}

// Normalize canonicalizes a free-text chord name: root spelling forced to
// sharps, suffix aliases collapsed to the display convention, slash notation
// recursed on both sides. Returns "" for unparseable input; unknown suffixes
// pass through unchanged.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if i := strings.Index(text, "/"); i >= 0 {
		left := Normalize(text[:i])
		if left == "" {
			return ""
		}
		bass := normalizeRoot(strings.TrimSpace(text[i+1:]))
		if bass == "" {
			return ""
		}
		return left + "/" + bass
	}

	root, suffix := splitName(text)
	if root == "" {
		return ""
	}
	return root + canonicalSuffix(strings.TrimSpace(suffix))
}

// splitName consumes a 2-character root token ("C#", "Db", "D♭") before
// falling back to a 1-character one, returning the canonical sharp root and
// the raw remainder.
func splitName(text string) (string, string) {
	runes := []rune(text)
	if len(runes) >= 2 {
		if root := normalizeRoot(string(runes[:2])); root != "" {
			return root, string(runes[2:])
		}
	}
	if len(runes) >= 1 {
		if root := normalizeRoot(string(runes[:1])); root != "" {
			return root, string(runes[1:])
		}
	}
	return "", ""
}

// normalizeRoot maps one root token onto its canonical sharp/natural
// spelling, or "" when the token is not a note name.
func normalizeRoot(token string) string {
	runes := []rune(token)
	if len(runes) == 0 || len(runes) > 2 {
		return ""
	}
	letter := runes[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'G' {
		return ""
	}
	if len(runes) == 1 {
		return string(letter)
	}
	switch runes[1] {
	case '#':
		candidate := string(letter) + "#"
		if mapped, ok := rootEquivalents[candidate]; ok {
			return mapped // B# and E# fold onto naturals
		}
		if _, ok := model.ParsePitchClass(candidate); ok {
			return candidate
		}
	case 'b', '♭':
		if mapped, ok := rootEquivalents[string(letter)+"b"]; ok {
			return mapped
		}
	}
	return ""
}

func canonicalSuffix(suffix string) string {
	if canonical, ok := suffixAliases[suffix]; ok {
		return canonical
	}
	// single characters stay case-sensitive ("M" vs "m")
	if len(suffix) > 1 {
		if canonical, ok := suffixAliases[strings.ToLower(suffix)]; ok {
			return canonical
		}
	}
	return suffix
}

// Validate judges a free-text guess against the target chord. An
// exact-after-normalization match is checked before the enharmonic-root
// fallback; that precedence decides IsEnharmonic for targets already spelled
// with flats. Empty guesses are incorrect, never an error.
func Validate(guessText string, target model.Chord) model.ChordValidationResult {
	answer := target.DisplayName
	res := model.ChordValidationResult{
		OriginalGuess:    guessText,
		NormalizedGuess:  Normalize(guessText),
		NormalizedAnswer: Normalize(answer),
	}

	switch {
	case res.NormalizedGuess != "" && res.NormalizedGuess == res.NormalizedAnswer:
		res.IsCorrect = true
	case enharmonicMatch(guessText, answer):
		res.IsCorrect = true
	}

	if res.IsCorrect {
		res.IsEnharmonic = containsFlat(guessText) && strings.Contains(res.NormalizedAnswer, "#")
	} else {
		res.Feedback = fmt.Sprintf("Incorrect. The correct answer is %s.", answer)
	}
	return res
}

// enharmonicMatch re-parses both names into (root, suffix) and accepts them
// when the roots are enharmonically equal and the suffixes match exactly.
// This is the one case where differently normalized strings still count.
func enharmonicMatch(guessText, answer string) bool {
	guessRoot, guessSuffix := splitName(strings.TrimSpace(guessText))
	answerRoot, answerSuffix := splitName(strings.TrimSpace(answer))
	if guessRoot == "" || answerRoot == "" {
		return false
	}
	return guessRoot == answerRoot &&
		strings.TrimSpace(guessSuffix) == strings.TrimSpace(answerSuffix)
}

// containsFlat reports whether the text uses flat notation: 'b' or '♭'
// immediately after a note letter.
func containsFlat(text string) bool {
	runes := []rune(text)
	for i := 1; i < len(runes); i++ {
		if runes[i] != 'b' && runes[i] != '♭' {
			continue
		}
		letter := runes[i-1]
		if letter >= 'a' && letter <= 'g' || letter >= 'A' && letter <= 'G' {
			return true
		}
	}
	return false
}
