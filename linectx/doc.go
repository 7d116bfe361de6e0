// Package linectx provides sequential line streams for reading and writing
// block streams.
//
// A [Context] is either read or written, once, start to finish. Two
// implementations exist: [Mem], which stores lines NUL-separated in a
// [heapbuf.Buf], and [File], which reads from an io.Reader or writes to an
// io.Writer using CR LF line endings and cosmetic indentation.
//
// Writes never fail loudly. The first write failure is recorded and every
// later AddLine is a no-op; callers check [Context.Err] once the pass is
// done:
//
//	lc, err := linectx.CreateWrite("song.blk")
//	if err != nil {
//	    return err
//	}
//	block.Begin(lc, "SONG", title)
//	payload.EncodeText(lc, notes)
//	block.End(lc)
//	if err := lc.Close(); err != nil {
//	    return err
//	}
//	return lc.Err()
package linectx
