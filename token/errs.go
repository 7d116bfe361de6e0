package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated")
	ErrNoToken      = errors.New("no such token")
	ErrNumber       = errors.New("number")
)

// TokenizeErr reports where on a line tokenization failed.
type TokenizeErr struct {
	Err    error
	Column int
}

func NewTokenizeErr(err error, col int) *TokenizeErr {
	return &TokenizeErr{Err: err, Column: col}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at column %d", e.Err.Error(), e.Column)
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}
