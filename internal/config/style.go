package config

import "strconv"

// StyleForChannel returns the style name used for a channel when the
// configuration does not name one: "Default" for channel 0, "CustomN" for
// every other channel N.
func StyleForChannel(ch int) string {
	if ch == 0 {
		return "Default"
	}
	return "Custom" + strconv.Itoa(ch)
}
