package pipeline

import "strings"

// GlueMark joins two syllables with no separating space.
const GlueMark = '\\'

// Tokenize splits dialogue text into syllables. Spaces are soft boundaries and
// glue marks are hard ones; newlines count as spaces.
//
// Each delimiter closes one syllable, so a strict pairing of spans and
// delimiters would drop the text after the last delimiter. Tokenize keeps that
// text as a final unattached syllable instead. Text containing no delimiter at
// all yields no syllables.
func Tokenize(text string) []Syllable {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	flags, rest := boundaryFlags(text)
	if len(flags) == 0 {
		return nil
	}

	spans := strings.Split(strings.ReplaceAll(text, string(GlueMark), " "), " ")
	n := min(len(spans), len(flags))
	out := make([]Syllable, 0, n+1)
	for i := 0; i < n; i++ {
		out = append(out, Syllable{Text: spans[i], Attached: flags[i]})
	}
	if rest != "" {
		out = append(out, Syllable{Text: rest})
	}
	return out
}

// boundaryFlags walks the text once, recording for every delimiter whether it
// was a glue mark. It also returns the text after the last delimiter.
func boundaryFlags(text string) ([]bool, string) {
	var flags []bool
	cursor := 0
	for {
		space := indexFrom(text, ' ', cursor)
		glue := indexFrom(text, GlueMark, cursor)

		var at int
		switch {
		case space == -1 && glue == -1:
			return flags, text[cursor:]
		case space == -1:
			at = glue
		case glue == -1:
			at = space
		default:
			at = min(space, glue)
		}
		flags = append(flags, at == glue)
		cursor = at + 1
	}
}

func indexFrom(s string, b byte, from int) int {
	if from >= len(s) {
		return -1
	}
	i := strings.IndexByte(s[from:], b)
	if i < 0 {
		return -1
	}
	return from + i
}
