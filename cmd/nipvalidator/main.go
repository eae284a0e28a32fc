// Package main provides the nipvalidator command line tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/nipvalidator/cmd/nipvalidator/commands"
	"github.com/dmitrymomot/nipvalidator/pkg/logger"
	"github.com/dmitrymomot/nipvalidator/pkg/nip"
	"github.com/dmitrymomot/nipvalidator/pkg/sanitizer"
)

var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "nipvalidator",
		Usage:   "Validate Polish tax identification numbers (NIP)",
		Version: version,
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Validate values given as arguments, or one per line on stdin",
				ArgsUsage: "[value...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					log, v, err := setup(cmd)
					if err != nil {
						return err
					}
					return commands.RunCheck(ctx, v, cmd.Args().Slice(), cmd.String("format"), commands.DefaultIO(), log)
				},
			},
			{
				Name:  "pattern",
				Usage: "Print the pattern values are matched against",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, v, err := setup(cmd)
					if err != nil {
						return err
					}
					return commands.RunPattern(v, commands.DefaultIO())
				},
			},
			{
				Name:  "serve",
				Usage: "Start the HTTP API (configured with NIP_HTTP_* variables)",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					log, v, err := setup(cmd)
					if err != nil {
						return err
					}
					return commands.RunServe(ctx, v, log)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, commands.ErrInvalidValues) {
			os.Exit(1)
		}
		slog.Error("application error", slog.Any("error", err))
		os.Exit(2)
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML file with validation settings",
			Sources: cli.EnvVars(commands.EnvPrefix + "CONFIG"),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   "text",
			Usage:   "Log format: 'text' or 'json'",
			Sources: cli.EnvVars(commands.EnvPrefix + "LOG_FORMAT"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "warn",
			Usage:   "Log level: debug, info, warn or error",
			Sources: cli.EnvVars(commands.EnvPrefix + "LOG_LEVEL"),
		},
		&cli.BoolFlag{Name: "allow-dashes", Usage: "Accept dash-grouped layouts next to plain digits"},
		&cli.BoolFlag{Name: "require-dashes", Usage: "Accept dash-grouped layouts only"},
		&cli.BoolFlag{Name: "allow-prefix", Usage: "Accept an optional country prefix"},
		&cli.BoolFlag{Name: "require-prefix", Usage: "Require a country prefix"},
		&cli.IntFlag{
			Name:  "prefix-length",
			Value: nip.DefaultPrefixLength,
			Usage: "Number of prefix letters, 0 disables the prefix",
		},
		&cli.StringFlag{Name: "pattern", Usage: "Custom RE2 pattern replacing the generated one"},
		&cli.BoolFlag{Name: "no-checksum", Usage: "Skip check digit verification"},
		&cli.StringSliceFlag{
			Name:  "normalizer",
			Usage: fmt.Sprintf("Normalizer applied before matching, repeatable (%v)", sanitizer.Names()),
		},
	}
}

// setup builds the logger and the validator shared by all subcommands.
func setup(cmd *cli.Command) (*slog.Logger, *nip.Validator, error) {
	log, err := commands.NewLogger(os.Stderr, cmd.String("log-format"), cmd.String("log-level"))
	if err != nil {
		return nil, nil, err
	}
	logger.SetAsDefault(log)

	settings, err := commands.LoadSettings(cmd.String("config"), overrides(cmd))
	if err != nil {
		return nil, nil, err
	}

	v, err := settings.Validator(nip.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	return log, v, nil
}

func overrides(cmd *cli.Command) commands.Overrides {
	o := commands.Overrides{
		NoChecksum:  cmd.Bool("no-checksum"),
		Normalizers: cmd.StringSlice("normalizer"),
	}
	if cmd.IsSet("pattern") {
		p := cmd.String("pattern")
		o.Pattern = &p
	}
	for name, dst := range map[string]**bool{
		"allow-dashes":   &o.AllowDashes,
		"require-dashes": &o.RequireDashes,
		"allow-prefix":   &o.AllowPrefix,
		"require-prefix": &o.RequirePrefix,
	} {
		if cmd.IsSet(name) {
			b := cmd.Bool(name)
			*dst = &b
		}
	}
	if cmd.IsSet("prefix-length") {
		n := cmd.Int("prefix-length")
		o.PrefixLength = &n
	}
	return o
}
