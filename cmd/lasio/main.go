// Command lasio inspects LAS well-log files.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "lasio",
		Usage: "read LAS well-log files and print their headers and curves",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "TOML file with default read options",
				EnvVars: []string{"LASIO_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "no-null-subs",
				Usage:   "keep the NULL sentinel instead of replacing it with NaN",
				EnvVars: []string{"LASIO_NO_NULL_SUBS"},
			},
			&cli.Float64Flag{
				Name:    "null",
				Usage:   "override the NULL sentinel declared in ~Well",
				EnvVars: []string{"LASIO_NULL"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log parser diagnostics",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "header",
				Usage:     "print the header sections",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: "yaml", Usage: "output format: yaml or text"},
				},
				Action: headerAction,
			},
			{
				Name:      "curves",
				Usage:     "list curves with their storage type and range",
				ArgsUsage: "FILE",
				Action:    curvesAction,
			},
			{
				Name:      "data",
				Usage:     "print curve samples as tab-separated columns",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "curve", Aliases: []string{"c"}, Usage: "curve mnemonic to print (repeatable, default all)"},
				},
				Action: dataAction,
			},
		},
	}
}
