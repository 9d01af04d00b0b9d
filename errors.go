package kspdv

import "errors"

// ErrInvalidConfiguration is returned, wrapped, by every failing constructor or lookup.
// Use errors.Is to test for it.
var ErrInvalidConfiguration = errors.New("invalid configuration")
