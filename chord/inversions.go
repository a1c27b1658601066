package chord

import (
	"github.com/beeckusu/project-music-ear-training-sub000/constants"
	"github.com/beeckusu/project-music-ear-training-sub000/model"
)

// Inversions lists successive inversions of a root-position voicing, index 0
// being the sorted root position itself. maxInversions is a descriptive cap,
// silently limited to len(notes)-1. When raising the lowest note would leave
// the playable range the sequence simply stops early: a voicing Build could
// not produce is never emitted. Empty input yields nil.
func Inversions(rootPosition []model.PitchedNote, maxInversions int) [][]model.PitchedNote {
	if len(rootPosition) == 0 {
		return nil
	}
	current := model.SortedNotes(rootPosition)
	if maxInversions > len(current)-1 {
		maxInversions = len(current) - 1
	}

	res := [][]model.PitchedNote{current}
	for i := 0; i < maxInversions; i++ {
		low := current[0]
		if low.Octave >= constants.MaxOctave {
			break
		}
		low.Octave++
		next := make([]model.PitchedNote, 0, len(current))
		next = append(next, current[1:]...)
		next = append(next, low)
		model.SortNotes(next)
		res = append(res, next)
		current = next
	}
	return res
}
