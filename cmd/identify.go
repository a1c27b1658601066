package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/beeckusu/project-music-ear-training-sub000/chord"
	midinote "github.com/beeckusu/project-music-ear-training-sub000/midi"
	"github.com/beeckusu/project-music-ear-training-sub000/model"
)

func init() {
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify <midi-number>...",
	Short: "Identifies the chord formed by MIDI note numbers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var notes []model.PitchedNote
		for _, arg := range args {
			num, err := strconv.Atoi(arg)
			if err != nil {
				return err
			}
			note, err := midinote.FromMidi(num)
			if err != nil {
				return err
			}
			notes = append(notes, note)
		}

		c, ok := chord.Identify(notes)
		if !ok {
			fmt.Println("no chord recognized")
			return nil
		}
		printChord(c)
		return nil
	},
}
