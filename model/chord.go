package model

// Chord is an octave-assigned, pitch-sorted voicing of a quality on a root.
// Values are never mutated after construction, only replaced.
type Chord struct {
	Root        PitchClass
	Quality     ChordQuality
	Notes       []PitchedNote // ascending by pitch
	Inversion   int           // 0 = root position
	DisplayName string
}

// Bass is the lowest-sounding note of the voicing.
func (c Chord) Bass() PitchedNote {
	return c.Notes[0]
}

// Scale selects the diatonic collection used by a key filter.
type Scale uint8

const (
	ScaleMajor Scale = iota
	ScaleMinor // natural minor

	numScales
)

var scaleOffsets = [numScales][]int{
	ScaleMajor: {0, 2, 4, 5, 7, 9, 11},
	ScaleMinor: {0, 2, 3, 5, 7, 8, 10},
}

var scaleNames = [numScales]string{
	ScaleMajor: "major",
	ScaleMinor: "minor",
}

func (s Scale) String() string {
	return scaleNames[s%numScales]
}

func ParseScale(text string) (Scale, bool) {
	for i, name := range scaleNames {
		if name == text {
			return Scale(i), true
		}
	}
	return 0, false
}

// KeyFilter restricts chords to those whose every tone is diatonic to the
// given key.
type KeyFilter struct {
	Tonic PitchClass
	Scale Scale
}

// Contains reports whether the pitch class belongs to the key's scale.
func (k KeyFilter) Contains(p PitchClass) bool {
	for _, offset := range scaleOffsets[k.Scale%numScales] {
		if k.Tonic.Add(offset) == p {
			return true
		}
	}
	return false
}

// ChordFilter describes the slice of the chord space a sampler may draw from.
// A nil Roots slice means all 12 pitch classes.
type ChordFilter struct {
	Qualities         []ChordQuality
	Roots             []PitchClass
	Octaves           []int
	IncludeInversions bool
	Key               *KeyFilter
}

// ChordValidationResult is the verdict on a free-text chord-name guess.
type ChordValidationResult struct {
	IsCorrect        bool   `json:"is_correct"`
	NormalizedGuess  string `json:"normalized_guess"`
	NormalizedAnswer string `json:"normalized_answer"`
	IsEnharmonic     bool   `json:"is_enharmonic"`
	OriginalGuess    string `json:"original_guess"`
	Feedback         string `json:"feedback,omitempty"`
}
