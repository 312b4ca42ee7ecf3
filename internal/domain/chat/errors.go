package chat

import "errors"

var ErrEmptyQuestion = errors.New("question must not be empty")
