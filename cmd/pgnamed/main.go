package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cybertec-postgresql/pgnamed/internal/cli"
	"github.com/cybertec-postgresql/pgnamed/internal/logger"
	urfavecli "github.com/urfave/cli/v3"
)

const version = "1.0.0"

func main() {
	app := &urfavecli.Command{
		Name:    "pgnamed",
		Usage:   "Rewrite SQL with named parameters into PostgreSQL positional form",
		Version: version,
		Commands: []*urfavecli.Command{
			{
				Name:      "rewrite",
				Usage:     "Rewrite a template and print the SQL plus ordered parameters",
				ArgsUsage: "[template]",
				Action:    rewriteCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringSliceFlag{
						Name:    "arg",
						Aliases: []string{"a"},
						Usage:   "Named argument as name=value (repeatable)",
					},
					&urfavecli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Read the template from a file instead of the argument",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (use - for stdout)",
						Value:   "-",
					},
					&urfavecli.BoolFlag{
						Name:  "json",
						Usage: "Machine-readable output",
					},
					&urfavecli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable debug output",
					},
				},
			},
			{
				Name:      "exec",
				Usage:     "Rewrite a template and execute it against PostgreSQL",
				ArgsUsage: "[template]",
				Action:    execCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:    "connection",
						Aliases: []string{"c"},
						Usage:   "PostgreSQL connection string (URI or key=value format). Supports standard PG* environment variables.",
					},
					&urfavecli.DurationFlag{
						Name:  "timeout",
						Usage: "Per-statement timeout",
					},
					&urfavecli.StringSliceFlag{
						Name:    "arg",
						Aliases: []string{"a"},
						Usage:   "Named argument as name=value (repeatable)",
					},
					&urfavecli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Read the template from a file instead of the argument",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (use - for stdout)",
						Value:   "-",
					},
					&urfavecli.BoolFlag{
						Name:  "json",
						Usage: "Machine-readable output",
					},
					&urfavecli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable debug output",
					},
				},
			},
			{
				Name:      "check",
				Usage:     "Parse and validate a template without executing it",
				ArgsUsage: "[template]",
				Action:    checkCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringSliceFlag{
						Name:    "arg",
						Aliases: []string{"a"},
						Usage:   "Named argument as name=value (repeatable)",
					},
					&urfavecli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Read the template from a file instead of the argument",
					},
					&urfavecli.BoolFlag{
						Name:  "json",
						Usage: "Machine-readable output",
					},
					&urfavecli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable debug output",
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rewriteCommand handles the 'pgnamed rewrite' command
func rewriteCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config := cli.DefaultConfig
	cli.ApplyFlagsToConfig(&config,
		cmd.String("file"), cmd.String("output"), cmd.Bool("json"), cmd.Bool("verbose"))

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger.SetVerbose(config.Verbose)

	return cli.Rewrite(&config, cmd.Args().First(), cmd.StringSlice("arg"))
}

// execCommand handles the 'pgnamed exec' command
func execCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config := cli.DefaultConfig
	cli.ApplyFlagsToConfig(&config,
		cmd.String("file"), cmd.String("output"), cmd.Bool("json"), cmd.Bool("verbose"))
	cli.ApplyExecFlagsToConfig(&config, cmd.String("connection"), cmd.Duration("timeout"))

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger.SetVerbose(config.Verbose)

	return cli.Exec(ctx, &config, cmd.Args().First(), cmd.StringSlice("arg"))
}

// checkCommand handles the 'pgnamed check' command
func checkCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config := cli.DefaultConfig
	cli.ApplyFlagsToConfig(&config,
		cmd.String("file"), "", cmd.Bool("json"), cmd.Bool("verbose"))
	logger.SetVerbose(config.Verbose)

	exitCode, err := cli.Check(&config, cmd.Args().First(), cmd.StringSlice("arg"))
	if err != nil {
		return err
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}
