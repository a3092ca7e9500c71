package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingMarkers means a channel has onsets but no line markers, so
	// its syllables cannot be split into lines.
	ErrMissingMarkers = errors.New("no subtitle line markers")
	// ErrNoOnsets means a channel has no onset timestamps.
	ErrNoOnsets = errors.New("no note onsets")
)

// ChannelError ties a processing failure to the channel it came from.
type ChannelError struct {
	Channel int
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("channel %d: %v", e.Channel, e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}
