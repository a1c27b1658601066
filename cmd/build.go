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
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build <root> <quality> <octave> [inversion]",
	Short: "Builds a chord and prints its voicing",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, ok := model.ParsePitchClass(args[0])
		if !ok {
			return fmt.Errorf("unknown root: %q", args[0])
		}
		quality, ok := model.ParseQuality(args[1])
		if !ok {
			return fmt.Errorf("unknown quality: %q", args[1])
		}
		octave, err := strconv.Atoi(args[2])
		if err != nil {
			return err
		}
		inversion := 0
		if len(args) == 4 {
			if inversion, err = strconv.Atoi(args[3]); err != nil {
				return err
			}
		}

		c, err := chord.Build(root, quality, octave, inversion)
		if err != nil {
			return err
		}
		printChord(c)
		return nil
	},
}

func printChord(c model.Chord) {
	fmt.Printf("%s\n", c.DisplayName)
	for _, n := range c.Notes {
		num, err := midinote.ToMidi(n)
		if err != nil {
			fmt.Printf("  %s\n", n)
			continue
		}
		fmt.Printf("  %s (midi %d)\n", n, num)
	}
}
