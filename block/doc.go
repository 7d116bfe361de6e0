// Package block implements the nesting discipline of block streams.
//
// A line whose first token starts with '<' opens a block; the rest of the
// token is the block name and the remaining tokens are its parameters. A
// line whose first token starts with '>' closes the innermost open block.
// Everything else inside a block is a payload line, interpreted by whoever
// understands the block.
//
//	<PROJECT 0.1 "my project"
//	  TEMPO 120
//	  <TRACK
//	    NAME lead
//	  >
//	>
//
// [Next] returns the next line carrying tokens. [Skip] discards the rest of
// the current block, which is how readers pass over block types they do not
// know.
package block
