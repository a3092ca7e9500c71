package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"midikara/internal/midi"
	"midikara/internal/pipeline"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "List the channels, onsets, and line markers of a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve path: %w", err)
		}
		timing, err := midi.ReadFile(path, midi.Options{MarkerKey: uint8(appConfig.Render.MarkerKey)})
		if err != nil {
			return err
		}

		var rows [][]string
		for _, ch := range timing.Channels() {
			ct := timing.Channel(ch)
			settings := appConfig.ForChannel(ch)
			rows = append(rows, []string{
				strconv.Itoa(ch),
				settings.Style,
				strconv.Itoa(len(ct.Onsets)),
				strconv.Itoa(len(ct.Markers)),
				pipeline.FormatTimestamp(ct.Onsets[0] * 1000),
				pipeline.FormatTimestamp(ct.Onsets[len(ct.Onsets)-1] * 1000),
				displayPath(settings.Dialogue),
			})
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderTable([]column{
			{"Channel", true},
			{"Style", false},
			{"Onsets", true},
			{"Markers", true},
			{"First", true},
			{"Last", true},
			{"Dialogue", false},
		}, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func displayPath(path string) string {
	if path == "" {
		return "-"
	}
	return filepath.Base(path)
}
