package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urbanwaste/dumpwatch/pkg/domain/model"
	"github.com/urbanwaste/dumpwatch/pkg/domain/types"
	"github.com/urbanwaste/dumpwatch/pkg/service/render"
	"github.com/urbanwaste/dumpwatch/pkg/usecase"
	"github.com/urfave/cli/v3"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// outputFlag is the --output flag shared by the one-shot commands
type outputFlag struct {
	Format string
}

func (o *outputFlag) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output format (text, yaml)",
			Value:       outputText,
			Sources:     cli.EnvVars("DUMPWATCH_OUTPUT"),
			Destination: &o.Format,
		},
	}
}

func (o *outputFlag) Validate() error {
	switch o.Format {
	case outputText, outputYAML:
		return nil
	default:
		return goerr.New("invalid output format", goerr.V("output", o.Format))
	}
}

// queryAction is the body of a one-shot command
type queryAction func(ctx context.Context, c *cli.Command, uc *usecase.Points, p *render.Printer, yaml bool) error

func (e *environment) query(output *outputFlag, action queryAction) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		if err := output.Validate(); err != nil {
			return err
		}

		uc, printer, release, err := e.setup(ctx)
		if err != nil {
			return err
		}
		defer release()

		return action(ctx, c, uc, printer, output.Format == outputYAML)
	}
}

func cmdShell(env *environment) *cli.Command {
	return &cli.Command{
		Name:   "shell",
		Usage:  "Start the interactive menu (default)",
		Action: env.runShell,
	}
}

func cmdPoints(env *environment) *cli.Command {
	var output outputFlag

	return &cli.Command{
		Name:  "points",
		Usage: "List every disposal point",
		Flags: output.Flags(),
		Action: env.query(&output, func(ctx context.Context, _ *cli.Command, uc *usecase.Points, p *render.Printer, yaml bool) error {
			points, err := uc.ListPoints(ctx)
			if err != nil {
				return err
			}
			if yaml {
				return render.YAML(p.Writer(), model.SeedConfig{Points: points})
			}
			p.PointTable(points)
			return nil
		}),
	}
}

func cmdNeighborhood(env *environment) *cli.Command {
	var output outputFlag

	return &cli.Command{
		Name:      "neighborhood",
		Usage:     "List the points of a neighborhood (case-insensitive)",
		ArgsUsage: "<name>",
		Flags:     output.Flags(),
		Action: env.query(&output, func(ctx context.Context, c *cli.Command, uc *usecase.Points, p *render.Printer, yaml bool) error {
			if c.NArg() != 1 {
				return goerr.New("exactly one neighborhood name is required")
			}
			name := c.Args().First()

			points, err := uc.FindByNeighborhood(ctx, name)
			if err != nil {
				return err
			}
			if yaml {
				return render.YAML(p.Writer(), model.SeedConfig{Points: points})
			}
			if len(points) == 0 {
				p.Printf("No points found for '%s'.\n", name)
				return nil
			}
			p.PointsOfNeighborhood(points)
			return nil
		}),
	}
}

func cmdSeverity(env *environment) *cli.Command {
	var output outputFlag

	return &cli.Command{
		Name:      "severity",
		Usage:     "List the points within a severity band",
		ArgsUsage: "<low|medium|high>",
		Flags:     output.Flags(),
		Action: env.query(&output, func(ctx context.Context, c *cli.Command, uc *usecase.Points, p *render.Printer, yaml bool) error {
			if c.NArg() != 1 {
				return goerr.New("exactly one severity band is required")
			}
			band, err := types.ParseBand(c.Args().First())
			if err != nil {
				return goerr.Wrap(err, "invalid severity band argument")
			}

			points, err := uc.FindByBand(ctx, band)
			if err != nil {
				return err
			}
			if yaml {
				return render.YAML(p.Writer(), model.SeedConfig{Points: points})
			}
			if len(points) == 0 {
				p.Printf("No points found with severity in level '%s'.\n", band)
				return nil
			}
			p.PointsWithNeighborhood(points)
			return nil
		}),
	}
}

func cmdReport(env *environment) *cli.Command {
	var output outputFlag

	return &cli.Command{
		Name:  "report",
		Usage: "Count the points per neighborhood",
		Flags: output.Flags(),
		Action: env.query(&output, func(ctx context.Context, _ *cli.Command, uc *usecase.Points, p *render.Printer, yaml bool) error {
			report, err := uc.Report(ctx)
			if err != nil {
				return err
			}
			if yaml {
				return render.YAML(p.Writer(), report)
			}
			p.Report(report)
			return nil
		}),
	}
}

func cmdStatus(env *environment) *cli.Command {
	var output outputFlag

	return &cli.Command{
		Name:      "status",
		Usage:     "List the points with a given status",
		ArgsUsage: "<pending|in_progress|resolved>",
		Flags:     output.Flags(),
		Action: env.query(&output, func(ctx context.Context, c *cli.Command, uc *usecase.Points, p *render.Printer, yaml bool) error {
			if c.NArg() != 1 {
				return goerr.New("exactly one status is required")
			}
			status, err := types.ParseStatus(c.Args().First())
			if err != nil {
				return goerr.Wrap(err, "invalid status argument")
			}

			points, err := uc.FindByStatus(ctx, status)
			if err != nil {
				return err
			}
			if yaml {
				return render.YAML(p.Writer(), model.SeedConfig{Points: points})
			}
			if len(points) == 0 {
				p.Printf("No points found with status '%s'.\n", status)
				return nil
			}
			p.PointsWithNeighborhood(points)
			return nil
		}),
	}
}

// bandInfo is the YAML shape of a band definition
type bandInfo struct {
	Name        string `yaml:"name"`
	Min         int    `yaml:"min"`
	Max         int    `yaml:"max"`
	Description string `yaml:"description"`
}

func cmdBands(env *environment) *cli.Command {
	var output outputFlag

	return &cli.Command{
		Name:  "bands",
		Usage: "Show the severity band definitions",
		Flags: output.Flags(),
		Action: func(ctx context.Context, _ *cli.Command) error {
			if err := output.Validate(); err != nil {
				return err
			}
			p, err := env.displayCfg.Configure(env.out)
			if err != nil {
				return err
			}

			if output.Format == outputYAML {
				bands := make([]bandInfo, 0, len(types.Bands()))
				for _, b := range types.Bands() {
					min, max := b.Bounds()
					bands = append(bands, bandInfo{Name: b.String(), Min: min, Max: max, Description: b.Description()})
				}
				return render.YAML(p.Writer(), bands)
			}
			p.Bands()
			return nil
		},
	}
}
