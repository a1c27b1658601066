package constants

import "os"

// Playable octave range. Octave 0 and octaves 9+ exist in raw MIDI but are
// rejected at every API boundary, never clamped.
const (
	MinOctave = 1
	MaxOctave = 8
)

// MIDI note-number ranges. The playable sub-range [12,107] covers exactly
// octaves 1 through 8.
const (
	MinMidiNumber = 0
	MaxMidiNumber = 127

	MinPlayableMidi = MinOctave * 12
	MaxPlayableMidi = MaxOctave*12 + 11
)

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}
