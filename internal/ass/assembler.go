package ass

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"midikara/internal/pipeline"
)

// EventsHeader opens the events section.
const EventsHeader = "[Events]\nFormat: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text"

//go:embed preamble.txt
var preambleTemplate string

// styleRow is the default look of every generated style; only the name and
// the vertical margin differ so stacked channels do not overlap.
const styleRow = "Style: %s,Arial,64,&H00FFFFFF,&H000000FF,&H00000000,&H64000000,0,0,0,0,100,100,0,0,1,3,0,2,20,20,%d,1"

// Document is a complete subtitle document.
type Document struct {
	Preamble string
	Channels []pipeline.ChannelResult
}

// DefaultPreamble returns script info and one style row per name, in the
// given order.
func DefaultPreamble(styles []string) string {
	rows := make([]string, 0, len(styles))
	for i, name := range styles {
		rows = append(rows, fmt.Sprintf(styleRow, name, 40+i*80))
	}
	return strings.Replace(preambleTemplate, "{{STYLES}}", strings.Join(rows, "\n"), 1) + "\n" + EventsHeader
}

// Build joins the preamble and every channel's lines. The events header is
// added when the preamble does not already contain one.
func Build(doc Document) string {
	channels := make([]pipeline.ChannelResult, len(doc.Channels))
	copy(channels, doc.Channels)
	sort.SliceStable(channels, func(i, j int) bool {
		return channels[i].Channel < channels[j].Channel
	})

	var lines []string
	for _, ch := range channels {
		lines = append(lines, ch.Lines...)
	}
	events := strings.TrimSpace(strings.Join(lines, "\n"))

	preamble := strings.TrimSpace(doc.Preamble)
	if !strings.Contains(preamble, "[Events]") {
		if preamble != "" {
			preamble += "\n\n"
		}
		preamble += EventsHeader
	}
	return preamble + "\n" + events + "\n"
}
