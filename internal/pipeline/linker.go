package pipeline

import "fmt"

// tailSeconds is added to the last onset to give the final syllable an end
// time far past anything on screen.
const tailSeconds = 10000.0

// Mismatch describes a difference between syllable and onset counts. Linking
// proceeds with the shorter of the two.
type Mismatch struct {
	Syllables int
	Onsets    int
}

// OK reports whether the counts agree.
func (m Mismatch) OK() bool {
	return m.Syllables == m.Onsets
}

// Delta is syllables minus onsets. Positive means syllables were left
// without timing; negative means onsets were left unused.
func (m Mismatch) Delta() int {
	return m.Syllables - m.Onsets
}

func (m Mismatch) String() string {
	switch {
	case m.Delta() > 0:
		return fmt.Sprintf("more syllables than timings (%d syllables, %d onsets)", m.Syllables, m.Onsets)
	case m.Delta() < 0:
		return fmt.Sprintf("more timings than syllables (%d syllables, %d onsets)", m.Syllables, m.Onsets)
	default:
		return "syllables and timings match"
	}
}

// Link pairs each syllable with an onset (seconds) and flags the syllables
// that open a display line according to the marker timestamps (seconds).
//
// The first syllable always opens a line. A marker is consumed by the first
// syllable whose onset reaches it; once markers run out no further breaks are
// produced.
func Link(syllables []Syllable, onsets, markers []float64) ([]TimedSyllable, Mismatch) {
	mismatch := Mismatch{Syllables: len(syllables), Onsets: len(onsets)}
	n := min(len(syllables), len(onsets))
	if n == 0 {
		return nil, mismatch
	}

	times := make([]float64, len(onsets), len(onsets)+1)
	copy(times, onsets)
	times = append(times, onsets[len(onsets)-1]+tailSeconds)

	out := make([]TimedSyllable, 0, n)
	cursor := 0
	for i := 0; i < n; i++ {
		lineStart := false
		if cursor < len(markers) && ApproxGE(times[i], markers[cursor]) {
			cursor++
			lineStart = true
		}
		if i == 0 {
			lineStart = true
		}
		out = append(out, TimedSyllable{
			Text:      syllables[i].Text,
			StartMs:   times[i] * 1000,
			EndMs:     times[i+1] * 1000,
			Attached:  syllables[i].Attached,
			LineStart: lineStart,
		})
	}
	return out, mismatch
}
