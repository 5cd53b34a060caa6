package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/scorespan/builder"
	"github.com/jsphweid/scorespan/chord"
	"github.com/jsphweid/scorespan/midi"
	"github.com/jsphweid/scorespan/score"
	"github.com/jsphweid/scorespan/util"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [PATH]",
	Short: "Summarizes a MIDI file or every MIDI file in a directory",
	Long: `Summarizes a MIDI file or every MIDI file in a directory. Without PATH the
directory in SCORESPAN_MEDIA_PATH is used; SCORESPAN_MAX_FILES caps how many
files are read.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			dir, err := cfg.MediaDir()
			if err != nil {
				return err
			}
			path = dir
		}
		paths, err := midiPaths(path, cfg.MaxFiles)
		if err != nil {
			return err
		}
		return inspect(cmd.OutOrStdout(), paths)
	},
}

func midiPaths(path string, maxNum int) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return util.GatherAllMidiPaths(path, maxNum)
}

func inspect(w io.Writer, paths []string) error {
	for _, path := range paths {
		s, err := midi.LoadScore(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping file")
			continue
		}
		if err := summarize(w, path, s); err != nil {
			return err
		}
	}
	return nil
}

func summarize(w io.Writer, path string, s *score.Score) error {
	fmt.Fprintf(w, "%s: %q, %d parts, %g quarters\n", path, s.Title, len(s.Parts()), s.Duration())
	for _, p := range s.Parts() {
		spans, err := builder.FromPart(p, s)
		if err != nil {
			return err
		}
		meter := "none"
		if ms := p.Measures(); len(ms) > 0 && ms[0].TimeSignature != nil {
			meter = ms[0].TimeSignature.String()
		}
		fmt.Fprintf(w, "  %s: %d measures in %s, %d spans, %d sonorities\n",
			p.Name, len(p.Measures()), meter, len(spans), len(chord.GroupByKey(spans)))
	}
	return nil
}
