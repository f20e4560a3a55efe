package cli

import (
	"context"
	"io"

	"github.com/urbanwaste/dumpwatch/pkg/cli/config"
	"github.com/urbanwaste/dumpwatch/pkg/controller/shell"
	"github.com/urbanwaste/dumpwatch/pkg/service/render"
	"github.com/urbanwaste/dumpwatch/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// environment carries the root flags and streams shared by every command
type environment struct {
	in  io.Reader
	out io.Writer

	loggerCfg  config.Logger
	seedCfg    config.Seed
	displayCfg config.Display
}

// setup builds the use case and printer for one command run. release closes the repository.
func (e *environment) setup(ctx context.Context) (uc *usecase.Points, printer *render.Printer, release func(), err error) {
	printer, err = e.displayCfg.Configure(e.out)
	if err != nil {
		return nil, nil, nil, err
	}

	repo, err := e.seedCfg.Configure(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	return usecase.NewPoints(repo), printer, func() { _ = repo.Close() }, nil
}

func (e *environment) runShell(ctx context.Context, _ *cli.Command) error {
	uc, printer, release, err := e.setup(ctx)
	if err != nil {
		return err
	}
	defer release()

	return shell.New(uc, e.in, printer).Run(ctx)
}
