package pipeline

// Group partitions timed syllables into display lines, starting a new line at
// every syllable flagged LineStart.
func Group(timed []TimedSyllable) []DisplayLine {
	var lines []DisplayLine
	var current []TimedSyllable
	for _, syl := range timed {
		if syl.LineStart && len(current) > 0 {
			lines = append(lines, DisplayLine{Syllables: current})
			current = nil
		}
		current = append(current, syl)
	}
	if len(current) > 0 {
		lines = append(lines, DisplayLine{Syllables: current})
	}
	return lines
}

// Flatten concatenates the syllables of every line in order.
func Flatten(lines []DisplayLine) []TimedSyllable {
	var out []TimedSyllable
	for _, l := range lines {
		out = append(out, l.Syllables...)
	}
	return out
}

// Shift moves every syllable of every line by offsetMs, clamping at zero.
func Shift(lines []DisplayLine, offsetMs float64) []DisplayLine {
	if offsetMs == 0 {
		return lines
	}
	out := make([]DisplayLine, len(lines))
	for i, l := range lines {
		syls := make([]TimedSyllable, len(l.Syllables))
		for j, s := range l.Syllables {
			s.StartMs = max(s.StartMs+offsetMs, 0)
			s.EndMs = max(s.EndMs+offsetMs, 0)
			syls[j] = s
		}
		out[i] = DisplayLine{Syllables: syls}
	}
	return out
}
