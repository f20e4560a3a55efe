package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urbanwaste/dumpwatch/pkg/domain/types"
)

// SeedConfig represents the initial collection loaded at startup
type SeedConfig struct {
	Points []DisposalPoint `yaml:"points"`
}

// Validate validates every seeded point and the uniqueness of their IDs
func (c *SeedConfig) Validate() error {
	idMap := make(map[types.PointID]bool)
	for i, p := range c.Points {
		if err := p.Validate(); err != nil {
			return goerr.Wrap(err, "invalid point at index",
				goerr.V("index", i),
				goerr.V("id", p.ID.Int()))
		}

		if idMap[p.ID] {
			return goerr.Wrap(ErrDuplicatePointID, "invalid seed",
				goerr.V("id", p.ID.Int()))
		}
		idMap[p.ID] = true
	}

	return nil
}

// SamplePoints returns the built-in dataset used when no seed file is configured
func SamplePoints() []DisposalPoint {
	return []DisposalPoint{
		{ID: 1, Neighborhood: "Pirambu", Severity: 8, Status: types.StatusPending},
		{ID: 2, Neighborhood: "Barra do Ceará", Severity: 9, Status: types.StatusPending},
		{ID: 3, Neighborhood: "Vicente Pinzón", Severity: 5, Status: types.StatusPending},
		{ID: 4, Neighborhood: "Pirambu", Severity: 6, Status: types.StatusInProgress},
		{ID: 5, Neighborhood: "Centro", Severity: 7, Status: types.StatusResolved},
		{ID: 6, Neighborhood: "Vicente Pinzón", Severity: 2, Status: types.StatusResolved},
	}
}
