package model

import (
	"errors"
	"fmt"
)

type BuildRequestBody struct {
	Root      string `json:"root"`
	Quality   string `json:"quality"`
	Octave    int    `json:"octave"`
	Inversion int    `json:"inversion"`
}

type IdentifyRequestBody struct {
	Notes []uint8 `json:"notes"` // MIDI note numbers
}

// FilterBody is the wire form of a ChordFilter, shared by the HTTP API and
// the CLI's YAML filter files.
type FilterBody struct {
	Qualities  []string `json:"qualities" yaml:"qualities"`
	Roots      []string `json:"roots,omitempty" yaml:"roots"`
	Octaves    []int    `json:"octaves" yaml:"octaves"`
	Inversions bool     `json:"inversions" yaml:"inversions"`
	Key        *KeyBody `json:"key,omitempty" yaml:"key"`
}

type KeyBody struct {
	Tonic string `json:"tonic" yaml:"tonic"`
	Scale string `json:"scale" yaml:"scale"`
}

// ToFilter parses the wire form into a validated ChordFilter. An absent
// Roots list means all 12 pitch classes.
func (f FilterBody) ToFilter() (ChordFilter, error) {
	var res ChordFilter
	if len(f.Qualities) == 0 {
		return res, errors.New("filter needs at least one quality")
	}
	if len(f.Octaves) == 0 {
		return res, errors.New("filter needs at least one octave")
	}
	for _, s := range f.Qualities {
		q, ok := ParseQuality(s)
		if !ok {
			return res, fmt.Errorf("unknown quality: %q", s)
		}
		res.Qualities = append(res.Qualities, q)
	}
	for _, s := range f.Roots {
		p, ok := ParsePitchClass(s)
		if !ok {
			return res, fmt.Errorf("unknown root: %q", s)
		}
		res.Roots = append(res.Roots, p)
	}
	res.Octaves = f.Octaves
	res.IncludeInversions = f.Inversions
	if f.Key != nil {
		tonic, ok := ParsePitchClass(f.Key.Tonic)
		if !ok {
			return res, fmt.Errorf("unknown key tonic: %q", f.Key.Tonic)
		}
		scale, ok := ParseScale(f.Key.Scale)
		if !ok {
			return res, fmt.Errorf("unknown scale: %q", f.Key.Scale)
		}
		res.Key = &KeyFilter{Tonic: tonic, Scale: scale}
	}
	return res, nil
}

// ChordResponse is the wire form of a Chord.
type ChordResponse struct {
	Root        string   `json:"root"`
	Quality     string   `json:"quality"`
	DisplayName string   `json:"display_name"`
	Inversion   int      `json:"inversion"`
	Notes       []string `json:"notes"`
	MidiNotes   []uint8  `json:"midi_notes"`
}

type QuizResponse struct {
	Id    string        `json:"id"`
	Chord ChordResponse `json:"chord"`
}

type GuessRequestBody struct {
	Guess string `json:"guess"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
