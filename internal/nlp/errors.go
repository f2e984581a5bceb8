package nlp

import "errors"

var (
	ErrEmptyInput = errors.New("transcript is empty")
)
