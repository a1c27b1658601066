package chord

import (
	"sort"

	"github.com/beeckusu/project-music-ear-training-sub000/model"
)

// Identify searches for a (root, quality, inversion) whose formula matches
// the interval signature of the given notes. Input order is irrelevant; the
// notes are sorted first. Qualities are tried in their declaration order and
// candidate roots from the lowest note upward, so an ambiguous note set
// always resolves to the same chord. Returns ok=false for empty input or
// when nothing matches.
func Identify(input []model.PitchedNote) (model.Chord, bool) {
	if len(input) == 0 {
		return model.Chord{}, false
	}
	notes := model.SortedNotes(input)

	for _, quality := range model.Qualities() {
		if quality.NumNotes() != len(notes) {
			continue
		}
		want := normalizedFormula(quality)
		for p := range notes {
			if !equalIntervals(intervalsFrom(notes, p), want) {
				continue
			}
			inversion := 0
			if p != 0 {
				inversion = len(notes) - p
			}
			c := model.Chord{
				Root:      notes[p].Class,
				Quality:   quality,
				Notes:     notes,
				Inversion: inversion,
			}
			c.DisplayName = displayName(c)
			return c, true
		}
	}
	return model.Chord{}, false
}

// normalizedFormula reduces a quality's formula to its sorted mod-12 form,
// the shape Identify compares against.
func normalizedFormula(quality model.ChordQuality) []int {
	formula := quality.Formula()
	res := make([]int, len(formula))
	for i, interval := range formula {
		res[i] = interval % model.NumPitchClasses
	}
	sort.Ints(res)
	return res
}

// intervalsFrom treats notes[p] as the hypothetical root and returns every
// note's mod-12 semitone distance from it, sorted.
func intervalsFrom(notes []model.PitchedNote, p int) []int {
	root := notes[p].Semitone()
	res := make([]int, len(notes))
	for i, n := range notes {
		d := (n.Semitone() - root) % model.NumPitchClasses
		if d < 0 {
			d += model.NumPitchClasses
		}
		res[i] = d
	}
	sort.Ints(res)
	return res
}

func equalIntervals(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
