package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urbanwaste/dumpwatch/pkg/domain/types"
)

// Sentinel errors for domain operations
var (
	ErrPointNotFound     = goerr.New("disposal point not found")
	ErrDuplicatePointID  = goerr.New("duplicate disposal point ID")
	ErrInvalidStatus     = types.ErrInvalidStatus
	ErrInvalidSeverity   = goerr.New("invalid severity")
	ErrInvalidBand       = types.ErrInvalidBand
	ErrEmptyNeighborhood = goerr.New("neighborhood is required")
)
