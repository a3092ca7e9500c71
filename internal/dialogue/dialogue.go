// Package dialogue reads lyric text files for the syllable pipeline.
package dialogue

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Load reads a dialogue file. UTF-8 is assumed unless the file starts with a
// UTF-16 byte order mark.
func Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open dialogue: %w", err)
	}
	defer f.Close()

	text, err := Decode(f)
	if err != nil {
		return "", fmt.Errorf("read dialogue %s: %w", path, err)
	}
	return text, nil
}

// Decode reads dialogue text from r, strips any byte order mark and returns
// it in Unicode normalization form C so that a syllable composed of base
// letter and combining mark compares equal to its precomposed form.
func Decode(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", err
	}
	return norm.NFC.String(string(data)), nil
}
