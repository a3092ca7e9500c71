package pipeline

// Syllable is one delimiter-bounded span of dialogue text.
type Syllable struct {
	Text string
	// Attached is true when the syllable was followed by a glue mark, so it
	// renders with no space before the next syllable.
	Attached bool
}

// TimedSyllable is a syllable with its highlight window in milliseconds.
type TimedSyllable struct {
	Text      string
	StartMs   float64
	EndMs     float64
	Attached  bool
	LineStart bool
}

// DisplayLine is one on-screen subtitle entry. It is never empty.
type DisplayLine struct {
	Syllables []TimedSyllable
}

// Start returns the first syllable's start time in milliseconds.
func (l DisplayLine) Start() float64 {
	return l.Syllables[0].StartMs
}

// End returns the last syllable's end time in milliseconds.
func (l DisplayLine) End() float64 {
	return l.Syllables[len(l.Syllables)-1].EndMs
}

// ChannelTiming holds the onset and line-marker timestamps of one channel,
// both in seconds and non-decreasing.
type ChannelTiming struct {
	Channel int
	Onsets  []float64
	Markers []float64
}

// ChannelResult is the rendered output of one channel.
type ChannelResult struct {
	Channel   int
	Lines     []string
	Mismatch  Mismatch
	Syllables int
}
