package pipeline

import "testing"

func syllables(texts ...string) []Syllable {
	out := make([]Syllable, len(texts))
	for i, s := range texts {
		out[i] = Syllable{Text: s}
	}
	return out
}

func TestLink_SingleSyllableSyntheticEnd(t *testing.T) {
	timed, mismatch := Link(syllables("la"), []float64{1.0}, []float64{1.0})
	if len(timed) != 1 {
		t.Fatalf("expected 1 timed syllable, got %d", len(timed))
	}
	if want := (1.0 + 10000.0) * 1000; timed[0].EndMs != want {
		t.Errorf("EndMs = %v, want %v", timed[0].EndMs, want)
	}
	if timed[0].StartMs != 1000 {
		t.Errorf("StartMs = %v, want 1000", timed[0].StartMs)
	}
	if !timed[0].LineStart {
		t.Error("first syllable should start a line")
	}
	if !mismatch.OK() {
		t.Errorf("unexpected mismatch: %s", mismatch)
	}
}

func TestLink_FirstSyllableAlwaysStartsLine(t *testing.T) {
	// The only marker lies beyond the first onset.
	timed, _ := Link(syllables("a", "b", "c"), []float64{0, 1, 2}, []float64{1.5})
	want := []bool{true, false, true}
	for i, w := range want {
		if timed[i].LineStart != w {
			t.Errorf("timed[%d].LineStart = %v, want %v", i, timed[i].LineStart, w)
		}
	}
}

func TestLink_EndsChainToNextStart(t *testing.T) {
	timed, _ := Link(syllables("a", "b", "c"), []float64{0.5, 0.75, 2}, []float64{0})
	for i := 0; i < len(timed)-1; i++ {
		if timed[i].EndMs != timed[i+1].StartMs {
			t.Errorf("timed[%d].EndMs = %v, want %v", i, timed[i].EndMs, timed[i+1].StartMs)
		}
		if timed[i].StartMs > timed[i].EndMs {
			t.Errorf("timed[%d] starts after it ends", i)
		}
	}
}

func TestLink_MarkersConsumedOncePerSyllable(t *testing.T) {
	// Two markers are already passed by the second onset; only one is
	// consumed there, the other falls to the next syllable.
	timed, _ := Link(syllables("a", "b", "c", "d"), []float64{0, 2, 3, 4}, []float64{0, 1, 1.5})
	want := []bool{true, true, true, false}
	for i, w := range want {
		if timed[i].LineStart != w {
			t.Errorf("timed[%d].LineStart = %v, want %v", i, timed[i].LineStart, w)
		}
	}
}

func TestLink_ToleratesQuantizedMarkers(t *testing.T) {
	marker := 0.1 + 0.2 // 0.30000000000000004
	onset := 0.3 - 1e-12
	timed, _ := Link(syllables("a", "b"), []float64{0, onset}, []float64{0, marker})
	if !timed[1].LineStart {
		t.Error("onset within tolerance of a marker should start a line")
	}
}

func TestLink_ExhaustedMarkersKeepSyllables(t *testing.T) {
	timed, _ := Link(syllables("a", "b", "c", "d"), []float64{0, 1, 2, 3}, []float64{0, 1})
	if len(timed) != 4 {
		t.Fatalf("expected all 4 syllables after markers run out, got %d", len(timed))
	}
	if timed[2].LineStart || timed[3].LineStart {
		t.Error("no line breaks expected after markers are exhausted")
	}
}

func TestLink_LengthMismatch(t *testing.T) {
	tests := []struct {
		name      string
		syllables int
		onsets    []float64
		wantLen   int
		wantDelta int
	}{
		{"more syllables", 4, []float64{0, 1}, 2, 2},
		{"more onsets", 2, []float64{0, 1, 2, 3, 4}, 2, -3},
		{"no onsets", 3, nil, 0, 3},
		{"no syllables", 0, []float64{0, 1}, 0, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syls := make([]Syllable, tt.syllables)
			timed, mismatch := Link(syls, tt.onsets, []float64{0})
			if len(timed) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(timed), tt.wantLen)
			}
			if mismatch.OK() {
				t.Error("expected mismatch to be reported")
			}
			if mismatch.Delta() != tt.wantDelta {
				t.Errorf("Delta() = %d, want %d", mismatch.Delta(), tt.wantDelta)
			}
		})
	}
}

func TestLink_MoreOnsetsUsesRealNextOnsetAsEnd(t *testing.T) {
	timed, _ := Link(syllables("a", "b"), []float64{0, 1, 2}, []float64{0})
	if timed[1].EndMs != 2000 {
		t.Errorf("EndMs = %v, want 2000", timed[1].EndMs)
	}
}

func TestLink_DoesNotMutateOnsets(t *testing.T) {
	onsets := make([]float64, 2, 8)
	onsets[0], onsets[1] = 0, 1
	Link(syllables("a", "b"), onsets, []float64{0})
	if got := onsets[:3][2]; got != 0 {
		t.Errorf("onsets backing array was written: %v", got)
	}
}

func TestMismatchString(t *testing.T) {
	if s := (Mismatch{Syllables: 3, Onsets: 2}).String(); s != "more syllables than timings (3 syllables, 2 onsets)" {
		t.Errorf("unexpected string %q", s)
	}
	if s := (Mismatch{Syllables: 1, Onsets: 2}).String(); s != "more timings than syllables (1 syllables, 2 onsets)" {
		t.Errorf("unexpected string %q", s)
	}
}
