package cmd

import (
	"strings"
	"testing"

	"midikara/internal/pipeline"
	"midikara/internal/worker"

	"github.com/spf13/cobra"
)

func TestRenderTable_Empty(t *testing.T) {
	if got := renderTable(nil, nil); got != "" {
		t.Errorf("renderTable() = %q, want empty", got)
	}
}

func TestRenderTable_Alignment(t *testing.T) {
	got := renderTable([]column{{"Name", false}, {"Lines", true}}, [][]string{{"a", "2"}})
	for _, want := range []string{"│ a    │", "│     2 │"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
}

func TestRenderSummaryTable(t *testing.T) {
	summary := &worker.Summary{
		Output: "song.ass",
		Channels: []worker.ChannelSummary{
			{Channel: 0, Style: "Default", Dialogue: "/tmp/lead.txt", Syllables: 4, Lines: 2},
			{Channel: 1, Style: "Custom1", Syllables: 3, Lines: 1, Mismatch: pipeline.Mismatch{Syllables: 4, Onsets: 3}},
			{Channel: 2, Style: "Custom2", Err: &pipeline.ChannelError{Channel: 2, Err: worker.ErrMissingDialogue}},
		},
	}
	got := renderSummaryTable(summary)

	tests := []string{
		"Channel",
		"lead.txt",
		"ok",
		"more syllables than timings",
		"channel 2: " + worker.ErrMissingDialogue.Error(),
	}
	for _, want := range tests {
		if !strings.Contains(got, want) {
			t.Errorf("summary table missing %q:\n%s", want, got)
		}
	}
}

func TestSkipConfig(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		want bool
	}{
		{configCmd, true},
		{configInitCmd, true},
		{renderCmd, false},
		{inspectCmd, false},
		{rootCmd, false},
	}
	for _, tt := range tests {
		t.Run(tt.cmd.Name(), func(t *testing.T) {
			if got := skipConfig(tt.cmd); got != tt.want {
				t.Errorf("skipConfig(%s) = %v, want %v", tt.cmd.Name(), got, tt.want)
			}
		})
	}
}

func TestDisplayPath(t *testing.T) {
	if got := displayPath(""); got != "-" {
		t.Errorf("displayPath(\"\") = %q, want -", got)
	}
	if got := displayPath("/a/b/lyrics.txt"); got != "lyrics.txt" {
		t.Errorf("displayPath() = %q, want lyrics.txt", got)
	}
}
