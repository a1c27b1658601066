package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eartrain",
	Short: "Chord engine for ear-training drills",
	Long:  `Builds, identifies, samples and validates chords for ear-training drills.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
