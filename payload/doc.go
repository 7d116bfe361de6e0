// Package payload encodes bulk data inside a block.
//
// Binary data is written as base64 lines of at most [BinaryChunk] decoded
// bytes each. Text is written one line per text line, each prefixed with
// [TextMarker]. Both decoders are called just after the open line of the
// block holding the payload and consume through its close line.
package payload
