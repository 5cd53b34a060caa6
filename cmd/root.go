package cmd

import (
	"os"

	"github.com/jsphweid/scorespan/config"
	"github.com/jsphweid/scorespan/logging"
	"github.com/spf13/cobra"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "scorespan",
	Short: "Time spans of the notes, chords and rests in a score",
	Long: `scorespan reads MIDI files into scores and lists the time span of every
note, chord and rest, optionally merged across ties or sliced at every onset.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load("")
		if err != nil {
			return err
		}
		cfg = c
		logging.Setup(os.Stderr, cfg)
		return nil
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
