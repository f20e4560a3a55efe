package config

import (
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urbanwaste/dumpwatch/pkg/service/render"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"
)

// Display holds output configuration
type Display struct {
	Locale string
}

// Flags returns CLI flags for Display configuration
func (d *Display) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "locale",
			Usage:       "BCP 47 locale used to sort neighborhood names",
			Category:    "Display",
			Value:       "pt-BR",
			Sources:     cli.EnvVars("DUMPWATCH_LOCALE"),
			Destination: &d.Locale,
		},
	}
}

// Configure creates a printer writing to w
func (d *Display) Configure(w io.Writer) (*render.Printer, error) {
	tag, err := d.Tag()
	if err != nil {
		return nil, err
	}
	return render.NewPrinter(w, tag), nil
}

// Tag parses the configured locale
func (d *Display) Tag() (language.Tag, error) {
	if d.Locale == "" {
		return language.BrazilianPortuguese, nil
	}

	tag, err := language.Parse(d.Locale)
	if err != nil {
		return language.Und, goerr.Wrap(err, "invalid locale", goerr.V("locale", d.Locale))
	}
	return tag, nil
}

// LogValue returns structured log value
func (d Display) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("locale", d.Locale),
	)
}
