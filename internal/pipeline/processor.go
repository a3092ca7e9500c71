package pipeline

// Process runs the full syllable pipeline for one channel and returns its
// rendered event lines. offsetMs shifts every timestamp of the channel.
func Process(timing ChannelTiming, dialogue string, cfg RenderConfig, offsetMs float64) (*ChannelResult, error) {
	if len(timing.Onsets) == 0 {
		return nil, &ChannelError{Channel: timing.Channel, Err: ErrNoOnsets}
	}
	if len(timing.Markers) == 0 {
		return nil, &ChannelError{Channel: timing.Channel, Err: ErrMissingMarkers}
	}

	syllables := Tokenize(dialogue)
	timed, mismatch := Link(syllables, timing.Onsets, timing.Markers)
	lines := Shift(Group(timed), offsetMs)

	return &ChannelResult{
		Channel:   timing.Channel,
		Lines:     RenderLines(lines, cfg),
		Mismatch:  mismatch,
		Syllables: len(timed),
	}, nil
}
