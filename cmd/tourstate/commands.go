package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli"

	"github.com/katalvlaran/tourstate/cities"
	"github.com/katalvlaran/tourstate/internal/config"
	"github.com/katalvlaran/tourstate/tsp"
)

const (
	flagConfig    = "config"
	flagCities    = "cities"
	flagDelimiter = "delimiter"
	flagHeader    = "header"
	flagSeed      = "seed"
	flagShuffle   = "shuffle"
	flagStrategy  = "strategy"
	flagLogLevel  = "log-level"
)

var errNoCities = errors.New("no city list: set --cities or CITIES_FILE")

// settings merges tourstate.env, TOURSTATE_* variables and global flags;
// flags win.
func settings(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.GlobalString(flagConfig))
	if err != nil {
		return cfg, err
	}
	if c.GlobalIsSet(flagCities) {
		cfg.CitiesFile = c.GlobalString(flagCities)
	}
	if c.GlobalIsSet(flagDelimiter) {
		cfg.Delimiter = c.GlobalString(flagDelimiter)
	}
	if c.GlobalIsSet(flagHeader) {
		cfg.Header = c.GlobalBool(flagHeader)
	}
	if c.GlobalIsSet(flagSeed) {
		cfg.Seed = c.GlobalInt64(flagSeed)
	}
	if c.GlobalIsSet(flagShuffle) {
		cfg.Shuffle = c.GlobalBool(flagShuffle)
	}
	if c.GlobalIsSet(flagStrategy) {
		cfg.Strategy = c.GlobalString(flagStrategy)
	}
	if c.GlobalIsSet(flagLogLevel) {
		cfg.LogLevel = c.GlobalString(flagLogLevel)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.CitiesFile == "" {
		return cfg, errNoCities
	}
	return cfg, nil
}

// loadState builds the initial state described by the settings.
func loadState(c *cli.Context) (*tsp.State, error) {
	cfg, err := settings(c)
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(level)

	delim, err := cfg.DelimiterRune()
	if err != nil {
		return nil, err
	}
	list, err := cities.Load(cfg.CitiesFile, cities.WithDelimiter(delim), cities.WithHeader(cfg.Header))
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", cfg.CitiesFile).Int("cities", len(list)).Msg("city list loaded")

	return tsp.New(list,
		tsp.WithShuffle(cfg.Shuffle),
		tsp.WithSeed(cfg.Seed),
		tsp.WithStrategy(cfg.NeighborhoodStrategy()),
	)
}

func runCost(c *cli.Context) error {
	s, err := loadState(c)
	if err != nil {
		return err
	}
	return printState(c, s)
}

func runNeighbors(c *cli.Context) error {
	s, err := loadState(c)
	if err != nil {
		return err
	}
	if err = checkNeighborhoodFits(s); err != nil {
		return err
	}
	neighbors, err := s.AllNeighborsSample()
	if err != nil {
		return err
	}
	log.Info().Int("neighbors", len(neighbors)).Stringer("strategy", s.Strategy()).Msg("neighborhood generated")

	for _, n := range neighbors {
		if err = printState(c, n); err != nil {
			return err
		}
	}
	return nil
}

func runNeighbor(c *cli.Context) error {
	s, err := loadState(c)
	if err != nil {
		return err
	}
	if err = checkNeighborhoodFits(s); err != nil {
		return err
	}
	n, err := s.RandomNeighbor()
	if err != nil {
		return err
	}
	return printState(c, n)
}

func printState(c *cli.Context, s *tsp.State) error {
	cost, err := s.Cost()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "%s\t%.6f\n", s, cost)
	return err
}
