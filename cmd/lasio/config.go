package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/lasgo/las"
)

// fileConfig is the optional TOML configuration.
//
//	null_subs = false
//	null = -9999.0
//	log_level = "debug"
type fileConfig struct {
	NullSubs *bool    `toml:"null_subs"`
	Null     *float64 `toml:"null"`
	LogLevel string   `toml:"log_level"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// readOptions merges the config file with command-line flags; flags win.
func readOptions(c *cli.Context) ([]las.Option, error) {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if cfg.LogLevel != "" && !c.Bool("verbose") {
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log_level: %w", err)
		}
		logrus.SetLevel(level)
	}

	opts := []las.Option{las.WithLogger(logrus.StandardLogger())}
	switch {
	case c.IsSet("no-null-subs"):
		opts = append(opts, las.WithNullSubs(!c.Bool("no-null-subs")))
	case cfg.NullSubs != nil:
		opts = append(opts, las.WithNullSubs(*cfg.NullSubs))
	}
	switch {
	case c.IsSet("null"):
		opts = append(opts, las.WithNullValue(c.Float64("null")))
	case cfg.Null != nil:
		opts = append(opts, las.WithNullValue(*cfg.Null))
	}
	return opts, nil
}

// readArg parses the single FILE argument.
func readArg(c *cli.Context) (*las.Document, error) {
	if c.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one FILE argument, got %d", c.NArg())
	}
	opts, err := readOptions(c)
	if err != nil {
		return nil, err
	}
	return las.Read(c.Args().First(), opts...)
}
