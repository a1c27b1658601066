// Package midi converts between pitched notes and the 0-127 note-number
// scheme used by MIDI hardware, and decodes raw channel-voice messages.
package midi

import (
	"errors"
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/beeckusu/project-music-ear-training-sub000/constants"
	"github.com/beeckusu/project-music-ear-training-sub000/model"
)

var (
	ErrInvalidMidiNumber = errors.New("invalid midi note number")

	// ErrOutOfPlayableRange marks numbers that are valid MIDI but map to an
	// octave outside [1,8]. Valid-but-not-playable is a distinct condition
	// from invalid.
	ErrOutOfPlayableRange = errors.New("midi note outside playable range")
)

// ToMidi maps a pitched note onto its MIDI note number (octave*12 + pitch
// index).
func ToMidi(note model.PitchedNote) (uint8, error) {
	v := note.Semitone()
	if v < constants.MinMidiNumber || v > constants.MaxMidiNumber {
		return 0, fmt.Errorf("%w: %s maps to %d", ErrInvalidMidiNumber, note, v)
	}
	return uint8(v), nil
}

// FromMidi derives the pitched note for a MIDI number. Middle C (60) is C5
// under this engine's octave-1-indexed convention.
func FromMidi(number int) (model.PitchedNote, error) {
	var none model.PitchedNote
	if number < constants.MinMidiNumber || number > constants.MaxMidiNumber {
		return none, fmt.Errorf("%w: %d", ErrInvalidMidiNumber, number)
	}
	note := model.PitchedNote{
		Class:  model.PitchClass(number % model.NumPitchClasses),
		Octave: number / model.NumPitchClasses,
	}
	if note.Octave < constants.MinOctave || note.Octave > constants.MaxOctave {
		return none, fmt.Errorf("%w: %d maps to octave %d", ErrOutOfPlayableRange, number, note.Octave)
	}
	return note, nil
}

// NoteMessage is the decoded form of a raw channel-voice message. Non-note
// messages (control change, program change, ...) decode with both flags
// false; that is pass-through, not an error.
type NoteMessage struct {
	IsNoteOn  bool
	IsNoteOff bool
	Channel   uint8
	Key       uint8
	Velocity  uint8
}

// DecodeMessage interprets a raw message delivered by a MIDI input API. A
// status nibble of 0x9 with nonzero velocity is note-on; 0x8, or 0x9 with
// velocity zero, is note-off (the classic running-status convention).
func DecodeMessage(raw []byte) NoteMessage {
	var res NoteMessage
	msg := gomidi.Message(raw)
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		res = NoteMessage{IsNoteOn: true, Channel: ch, Key: key, Velocity: vel}
	case msg.GetNoteEnd(&ch, &key):
		res = NoteMessage{IsNoteOff: true, Channel: ch, Key: key}
	}
	return res
}
