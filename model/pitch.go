package model

import (
	"fmt"
	"sort"
	"strings"
)

// PitchClass is one of the 12 chromatic pitch classes. The canonical spelling
// is always sharp-based; flat spellings only exist at the text-normalization
// boundary and are converted immediately.
type PitchClass uint8

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

const NumPitchClasses = 12

var pitchNames = [NumPitchClasses]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

func (p PitchClass) String() string {
	return pitchNames[p%NumPitchClasses]
}

// Add moves n semitones up the 12-cycle, wrapping in both directions.
func (p PitchClass) Add(n int) PitchClass {
	v := (int(p) + n) % NumPitchClasses
	if v < 0 {
		v += NumPitchClasses
	}
	return PitchClass(v)
}

// ParsePitchClass accepts canonical sharp spellings, case-insensitively.
func ParsePitchClass(s string) (PitchClass, bool) {
	s = strings.TrimSpace(s)
	for i, name := range pitchNames {
		if strings.EqualFold(s, name) {
			return PitchClass(i), true
		}
	}
	return 0, false
}

// AllPitchClasses returns the 12 pitch classes in chromatic order.
func AllPitchClasses() []PitchClass {
	res := make([]PitchClass, NumPitchClasses)
	for i := range res {
		res[i] = PitchClass(i)
	}
	return res
}

// PitchedNote is a pitch class placed in a concrete octave.
type PitchedNote struct {
	Class  PitchClass `json:"class"`
	Octave int        `json:"octave"`
}

// Semitone is the note's absolute position on the chromatic line
// (octave*12 + pitch index), which doubles as its MIDI note number.
func (n PitchedNote) Semitone() int {
	return n.Octave*NumPitchClasses + int(n.Class)
}

// Less orders notes by octave first, then pitch-class index.
func (n PitchedNote) Less(m PitchedNote) bool {
	return n.Semitone() < m.Semitone()
}

func (n PitchedNote) String() string {
	return fmt.Sprintf("%s%d", n.Class, n.Octave)
}

// SortNotes orders notes ascending by pitch, in place.
func SortNotes(notes []PitchedNote) {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Less(notes[j])
	})
}

// SortedNotes returns an ascending copy, leaving the caller's slice alone.
func SortedNotes(notes []PitchedNote) []PitchedNote {
	res := make([]PitchedNote, len(notes))
	copy(res, notes)
	SortNotes(res)
	return res
}
