package encode

type RenderOption func(*RenderState)

func RenderColors(c *Colors) RenderOption {
	return func(rs *RenderState) { rs.colors = c }
}

// RenderIndent sets the number of spaces per nesting level.
func RenderIndent(n int) RenderOption {
	return func(rs *RenderState) { rs.indent = n }
}

// RenderLineEnd sets the line terminator, "\n" by default.
func RenderLineEnd(s string) RenderOption {
	return func(rs *RenderState) { rs.eol = s }
}
