// Package ass assembles rendered event lines into an Advanced SubStation
// Alpha document and writes it to disk.
//
// The document is a preamble (script info and styles) followed by the
// [Events] section. Channels are emitted in ascending order. When no preamble
// is supplied, one is generated with a style row for every style the events
// reference.
package ass
