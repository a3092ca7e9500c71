package pipeline

import (
	"math"
	"strconv"
	"strings"
)

// RenderConfig controls how a display line becomes an event record.
type RenderConfig struct {
	FormatLayerTag string
	StyleTag       string
	Name           string
	Effect         string
	// Margins are MarginL, MarginR, MarginV.
	Margins [3]string
	Karaoke bool
}

// DefaultRenderConfig returns the settings used for channel 0.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		FormatLayerTag: "Dialogue: 0",
		StyleTag:       "Default",
		Margins:        [3]string{"0", "0", "0"},
		Karaoke:        true,
	}
}

// RenderLine formats one display line as a comma-joined event record:
// layer, start, end, style, name, marginL, marginR, marginV, effect, text.
func RenderLine(line DisplayLine, cfg RenderConfig) string {
	var sb strings.Builder
	for _, syl := range line.Syllables {
		if cfg.Karaoke {
			sb.WriteString(karaokeTag(syl))
		}
		sb.WriteString(syl.Text)
		if !syl.Attached {
			sb.WriteByte(' ')
		}
	}

	fields := []string{
		cfg.FormatLayerTag,
		FormatTimestamp(line.Start()),
		FormatTimestamp(line.End()),
		cfg.StyleTag,
		cfg.Name,
		cfg.Margins[0],
		cfg.Margins[1],
		cfg.Margins[2],
		cfg.Effect,
		strings.TrimSpace(sb.String()),
	}
	return strings.Join(fields, ",")
}

// RenderLines renders every line with the same configuration.
func RenderLines(lines []DisplayLine, cfg RenderConfig) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, RenderLine(l, cfg))
	}
	return out
}

// karaokeTag returns the {\kNN} highlight tag; NN is the duration in
// centiseconds, rounded down.
func karaokeTag(syl TimedSyllable) string {
	return `{\k` + strconv.FormatInt(DurationCentiseconds(syl), 10) + `}`
}

// DurationCentiseconds returns the highlight duration of a syllable.
func DurationCentiseconds(syl TimedSyllable) int64 {
	return int64(math.Floor((syl.EndMs - syl.StartMs) / 10))
}
