package sim

import "errors"

var (
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
)
