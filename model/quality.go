package model

import "strings"

// ChordQuality is the closed set of chord types the engine understands.
// Declaration order doubles as the recognizer's priority order: when two
// qualities share a pitch-class set (C sus2 and G sus4 contain the same
// notes), the earlier quality wins.
type ChordQuality uint8

const (
	Major ChordQuality = iota
	Minor
	Diminished
	Augmented
	Sus2
	Sus4
	Major7
	Minor7
	Dominant7
	HalfDiminished7
	Diminished7
	Major9
	Minor9
	Dominant9
	Major11
	Minor11
	Dominant11
	Major13
	Dominant13
	Add9
	Add11

	NumQualities
)

// formulas maps each quality to its tones as ascending semitone offsets from
// the root. Thirteenth chords omit the 11th, keeping every formula within six
// tones. The keyed literal makes the compiler complain when a new quality is
// added without a formula.
var formulas = [NumQualities][]int{
	Major:           {0, 4, 7},
	Minor:           {0, 3, 7},
	Diminished:      {0, 3, 6},
	Augmented:       {0, 4, 8},
	Sus2:            {0, 2, 7},
	Sus4:            {0, 5, 7},
	Major7:          {0, 4, 7, 11},
	Minor7:          {0, 3, 7, 10},
	Dominant7:       {0, 4, 7, 10},
	HalfDiminished7: {0, 3, 6, 10},
	Diminished7:     {0, 3, 6, 9},
	Major9:          {0, 4, 7, 11, 14},
	Minor9:          {0, 3, 7, 10, 14},
	Dominant9:       {0, 4, 7, 10, 14},
	Major11:         {0, 4, 7, 11, 14, 17},
	Minor11:         {0, 3, 7, 10, 14, 17},
	Dominant11:      {0, 4, 7, 10, 14, 17},
	Major13:         {0, 4, 7, 11, 14, 21},
	Dominant13:      {0, 4, 7, 10, 14, 21},
	Add9:            {0, 4, 7, 14},
	Add11:           {0, 4, 7, 17},
}

// suffixes maps each quality to the canonical display suffix appended to the
// root name ("C" + "m7" = "Cm7").
var suffixes = [NumQualities]string{
	Major:           "",
	Minor:           "m",
	Diminished:      "dim",
	Augmented:       "aug",
	Sus2:            "sus2",
	Sus4:            "sus4",
	Major7:          "maj7",
	Minor7:          "m7",
	Dominant7:       "7",
	HalfDiminished7: "m7♭5",
	Diminished7:     "dim7",
	Major9:          "maj9",
	Minor9:          "m9",
	Dominant9:       "9",
	Major11:         "maj11",
	Minor11:         "m11",
	Dominant11:      "11",
	Major13:         "maj13",
	Dominant13:      "13",
	Add9:            "add9",
	Add11:           "add11",
}

var qualityNames = [NumQualities]string{
	Major:           "major",
	Minor:           "minor",
	Diminished:      "diminished",
	Augmented:       "augmented",
	Sus2:            "sus2",
	Sus4:            "sus4",
	Major7:          "major7",
	Minor7:          "minor7",
	Dominant7:       "dominant7",
	HalfDiminished7: "halfDiminished7",
	Diminished7:     "diminished7",
	Major9:          "major9",
	Minor9:          "minor9",
	Dominant9:       "dominant9",
	Major11:         "major11",
	Minor11:         "minor11",
	Dominant11:      "dominant11",
	Major13:         "major13",
	Dominant13:      "dominant13",
	Add9:            "add9",
	Add11:           "add11",
}

func (q ChordQuality) Valid() bool {
	return q < NumQualities
}

// Formula returns the quality's semitone offsets from the root. Callers must
// not mutate the returned slice.
func (q ChordQuality) Formula() []int {
	return formulas[q%NumQualities]
}

// NumNotes is the number of tones in the quality's voicing.
func (q ChordQuality) NumNotes() int {
	return len(q.Formula())
}

func (q ChordQuality) Suffix() string {
	return suffixes[q%NumQualities]
}

func (q ChordQuality) String() string {
	return qualityNames[q%NumQualities]
}

// ParseQuality accepts a quality name ("dominant7") or its canonical display
// suffix ("7"), case-insensitively. The empty string is not accepted even
// though it is the major suffix.
func ParseQuality(s string) (ChordQuality, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for q := ChordQuality(0); q < NumQualities; q++ {
		if strings.EqualFold(s, qualityNames[q]) || strings.EqualFold(s, suffixes[q]) {
			return q, true
		}
	}
	return 0, false
}

// Qualities returns every quality in recognizer-priority order.
func Qualities() []ChordQuality {
	res := make([]ChordQuality, NumQualities)
	for i := range res {
		res[i] = ChordQuality(i)
	}
	return res
}
