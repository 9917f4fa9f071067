package services

import "errors"

// ErrNotFound marks structural lookup failures (unknown product, unknown
// tenant) so handlers can signal 404 instead of a generic 400.
var ErrNotFound = errors.New("not found")
