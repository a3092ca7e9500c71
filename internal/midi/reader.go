package midi

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"midikara/internal/pipeline"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// DefaultMarkerKey is the note number (C5, MIDI 72) reserved for line markers.
const DefaultMarkerKey uint8 = 72

// ErrNoNotes is returned when a file contains no note-on events.
var ErrNoNotes = errors.New("midi file contains no notes")

// Options configures timing extraction.
type Options struct {
	MarkerKey uint8
}

// Timing holds the extracted onsets and markers of every channel, in seconds.
type Timing struct {
	onsets  map[int][]float64
	markers map[int][]float64
}

type noteEvent struct {
	tick  int64
	track int
	ch    uint8
	key   uint8
}

// ReadFile parses the MIDI file at path.
func ReadFile(path string, opts Options) (*Timing, error) {
	file, err := smf.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read midi %s: %w", path, err)
	}
	return extract(file, opts)
}

// Read parses a MIDI file from r.
func Read(r io.Reader, opts Options) (*Timing, error) {
	file, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("read midi: %w", err)
	}
	return extract(file, opts)
}

func extract(file *smf.SMF, opts Options) (*Timing, error) {
	var events []noteEvent
	for ti, track := range file.Tracks {
		var tick int64
		for _, ev := range track {
			tick += int64(ev.Delta)
			var ch, key, vel uint8
			if gomidi.Message(ev.Message).GetNoteStart(&ch, &key, &vel) {
				events = append(events, noteEvent{tick: tick, track: ti, ch: ch, key: key})
			}
		}
	}
	if len(events) == 0 {
		return nil, ErrNoNotes
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].track < events[j].track
	})

	t := &Timing{
		onsets:  make(map[int][]float64),
		markers: make(map[int][]float64),
	}
	for _, ev := range events {
		seconds := float64(file.TimeAt(ev.tick)) / 1e6
		ch := int(ev.ch)
		if ev.key == opts.MarkerKey {
			t.markers[ch] = append(t.markers[ch], seconds)
		} else {
			t.onsets[ch] = append(t.onsets[ch], seconds)
		}
	}
	return t, nil
}

// Channels returns the channels that carry onsets, in ascending order.
// Channels holding only markers are not listed.
func (t *Timing) Channels() []int {
	out := make([]int, 0, len(t.onsets))
	for ch := range t.onsets {
		out = append(out, ch)
	}
	sort.Ints(out)
	return out
}

// Channel returns the timing of one channel.
func (t *Timing) Channel(ch int) pipeline.ChannelTiming {
	return pipeline.ChannelTiming{
		Channel: ch,
		Onsets:  t.onsets[ch],
		Markers: t.markers[ch],
	}
}
