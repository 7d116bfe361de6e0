// Package encode renders block streams for people: lines are re-indented
// by nesting depth and, optionally, colored by kind.
//
// # Usage
//
//	lc := linectx.NewReader(f)
//	err := encode.Render(lc, os.Stdout, encode.RenderColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/signadot/blockline/block - nesting discipline
//   - github.com/signadot/blockline/linectx - line streams
package encode
