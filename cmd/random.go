package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/beeckusu/project-music-ear-training-sub000/model"
	"github.com/beeckusu/project-music-ear-training-sub000/sampler"
)

func init() {
	rootCmd.AddCommand(randomCmd)
}

var randomCmd = &cobra.Command{
	Use:   "random <filter.yaml>",
	Short: "Samples a random chord admitted by a filter file",
	Long: `Samples a random chord admitted by a filter file, e.g.:

    qualities: [major, minor, dominant7]
    roots: [C, G, D]
    octaves: [3, 4]
    inversions: true
    key:
      tonic: C
      scale: major
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var body model.FilterBody
		if err := yaml.Unmarshal(data, &body); err != nil {
			return err
		}
		filter, err := body.ToFilter()
		if err != nil {
			return err
		}

		c, err := sampler.New().SampleRandom(filter)
		if err != nil {
			return err
		}
		printChord(c)
		return nil
	},
}
