// Package midi extracts per-channel note timing from Standard MIDI Files.
//
// Every note-on with a non-zero velocity is an onset for its channel, except
// notes on the marker key, which mark where a new subtitle line begins. Tick
// positions are converted to seconds through the file's tempo map, and events
// from all tracks are merged in time order before being split by channel.
package midi
