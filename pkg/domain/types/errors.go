package types

import "github.com/m-mizutani/goerr/v2"

// Errors returned by the parsers of this package
var (
	ErrInvalidStatus = goerr.New("invalid status")
	ErrInvalidBand   = goerr.New("invalid severity band")
)
