package block

import "errors"

var (
	ErrUnterminated = errors.New("unterminated block")
	ErrUnbalanced   = errors.New("unbalanced close")
)
