// Package model defines the data structures shared by the obfuscation pipeline.
package model

// Path represents a file system path.
type Path string

// Encoding names the character set a script was decoded from.
type Encoding string

const (
	// EncodingUTF8 is used when the input is valid UTF-8.
	EncodingUTF8 Encoding = "utf-8"
	// EncodingWindows1252 is the fallback for legacy editor output.
	EncodingWindows1252 Encoding = "windows-1252"
)

// Source is a decoded script ready for the engine.
type Source struct {
	Origin   Path
	Encoding Encoding
	// Hash fingerprints the raw bytes on disk
	Hash    string
	Content string
}
