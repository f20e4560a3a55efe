package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urbanwaste/dumpwatch/pkg/domain/interfaces"
	"github.com/urbanwaste/dumpwatch/pkg/domain/model"
	"github.com/urbanwaste/dumpwatch/pkg/repository"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Seed holds the initial data configuration
type Seed struct {
	File     string
	NoSample bool
}

// Flags returns CLI flags for Seed configuration
func (s *Seed) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "seed",
			Usage:       "YAML file with the initial disposal points",
			Category:    "Data",
			Sources:     cli.EnvVars("DUMPWATCH_SEED"),
			Destination: &s.File,
		},
		&cli.BoolFlag{
			Name:        "no-sample",
			Usage:       "Start with an empty collection when no seed file is given",
			Category:    "Data",
			Sources:     cli.EnvVars("DUMPWATCH_NO_SAMPLE"),
			Destination: &s.NoSample,
		},
	}
}

// Configure creates the in-memory repository holding the initial collection
func (s *Seed) Configure(ctx context.Context) (interfaces.PointRepository, error) {
	logger := ctxlog.From(ctx)

	if s.File == "" {
		if s.NoSample {
			logger.Debug("Starting with an empty collection")
			return repository.NewMemory(), nil
		}
		logger.Debug("Starting with the sample collection")
		return repository.NewMemory(model.SamplePoints()...), nil
	}

	seed, err := LoadSeedFromFile(s.File)
	if err != nil {
		return nil, err
	}

	logger.Debug("Seed loaded",
		slog.String("path", s.File),
		slog.Int("points", len(seed.Points)),
	)
	return repository.NewMemory(seed.Points...), nil
}

// LogValue returns structured log value
func (s Seed) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file", s.File),
		slog.Bool("no_sample", s.NoSample),
	)
}

// LoadSeedFromFile loads the initial points from a YAML file
func LoadSeedFromFile(path string) (*model.SeedConfig, error) {
	if path == "" {
		return nil, goerr.New("seed file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "seed file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read seed file",
			goerr.V("path", path))
	}

	var seed model.SeedConfig
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML seed",
			goerr.V("path", path))
	}

	if err := seed.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid seed",
			goerr.V("path", path))
	}

	return &seed, nil
}
