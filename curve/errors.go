package curve

import "errors"

var (
	ErrMalformedRecord = errors.New("malformed record")
)
