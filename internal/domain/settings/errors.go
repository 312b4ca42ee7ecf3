package settings

import "errors"

var (
	ErrKeyNotFound    = errors.New("settings key not found")
	ErrConfigNotFound = errors.New("llm config not found")
	ErrInvalidConfig  = errors.New("invalid llm config")
)
