package chord

import (
	"errors"
	"fmt"

	"github.com/beeckusu/project-music-ear-training-sub000/constants"
	"github.com/beeckusu/project-music-ear-training-sub000/model"
)

var (
	// ErrInvalidQuality should be unreachable through the closed enum but
	// guards callers that cast their own integers.
	ErrInvalidQuality = errors.New("invalid chord quality")

	// ErrOctaveOutOfRange covers both a bad requested octave and a derived
	// note octave pushed outside [1,8] by the formula.
	ErrOctaveOutOfRange = errors.New("octave out of range")

	ErrInvalidInversion = errors.New("invalid inversion")
)

// Build constructs the voicing of quality on root starting at octave, then
// applies the requested inversion. Out-of-range results are errors, never
// clamped: an extended chord whose top tones spill past octave 8 is rejected.
func Build(root model.PitchClass, quality model.ChordQuality, octave, inversion int) (model.Chord, error) {
	var none model.Chord
	if !quality.Valid() {
		return none, fmt.Errorf("%w: %d", ErrInvalidQuality, quality)
	}
	formula := quality.Formula()
	if inversion < 0 || inversion >= len(formula) {
		return none, fmt.Errorf("%w: %d is not in [0,%d] for %s", ErrInvalidInversion, inversion, len(formula)-1, quality)
	}
	if octave < constants.MinOctave || octave > constants.MaxOctave {
		return none, fmt.Errorf("%w: %d", ErrOctaveOutOfRange, octave)
	}

	notes := make([]model.PitchedNote, 0, len(formula))
	for _, interval := range formula {
		idx := int(root) + interval
		oct := octave + idx/model.NumPitchClasses
		if oct > constants.MaxOctave {
			return none, fmt.Errorf("%w: %s%s at octave %d reaches octave %d", ErrOctaveOutOfRange, root, quality.Suffix(), octave, oct)
		}
		notes = append(notes, model.PitchedNote{
			Class:  model.PitchClass(idx % model.NumPitchClasses),
			Octave: oct,
		})
	}
	model.SortNotes(notes)

	// Each inversion step moves the then-lowest note up an octave.
	for i := 0; i < inversion; i++ {
		low := notes[0]
		if low.Octave >= constants.MaxOctave {
			return none, fmt.Errorf("%w: inversion %d pushes %s above octave %d", ErrInvalidInversion, inversion, low, constants.MaxOctave)
		}
		low.Octave++
		notes = append(notes[1:], low)
		model.SortNotes(notes)
	}

	c := model.Chord{
		Root:      root,
		Quality:   quality,
		Notes:     notes,
		Inversion: inversion,
	}
	c.DisplayName = displayName(c)
	return c, nil
}

// displayName renders root + canonical suffix, with slash notation for the
// bass note when inverted ("G7/B"). The bass octave is not part of the name.
func displayName(c model.Chord) string {
	name := c.Root.String() + c.Quality.Suffix()
	if c.Inversion > 0 {
		name += "/" + c.Bass().Class.String()
	}
	return name
}
