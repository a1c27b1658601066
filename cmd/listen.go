package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/beeckusu/project-music-ear-training-sub000/chord"
	midinote "github.com/beeckusu/project-music-ear-training-sub000/midi"
	"github.com/beeckusu/project-music-ear-training-sub000/model"
	"github.com/beeckusu/project-music-ear-training-sub000/util"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Identifies chords played on a connected MIDI device",
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	var mu sync.Mutex
	onNotes := make(map[uint8]bool)

	// wait for the hands to settle before naming the chord
	debounced := debounce.New(75 * time.Millisecond)
	identifyHeld := func() {
		mu.Lock()
		keys := util.GetKeysSorted(onNotes)
		mu.Unlock()
		if len(keys) == 0 {
			return
		}

		var notes []model.PitchedNote
		for _, key := range keys {
			note, err := midinote.FromMidi(int(key))
			if err != nil {
				return
			}
			notes = append(notes, note)
		}
		if c, ok := chord.Identify(notes); ok {
			fmt.Printf("%v -> %s\n", keys, c.DisplayName)
		}
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		decoded := midinote.DecodeMessage(msg)
		switch {
		case decoded.IsNoteOn:
			mu.Lock()
			onNotes[decoded.Key] = true
			mu.Unlock()
			debounced(identifyHeld)
		case decoded.IsNoteOff:
			mu.Lock()
			delete(onNotes, decoded.Key)
			mu.Unlock()
			debounced(identifyHeld)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	defer stop()

	select {} // run until interrupted
}
