// Command tourstate loads a city list and inspects a single tour state: its
// cost, its full neighborhood or one random neighbor.
//
//	tourstate --cities capitals.csv cost
//	tourstate --cities capitals.csv --strategy enumerate neighbors
//	tourstate --cities capitals.csv --shuffle --seed 7 neighbor
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("tourstate failed")
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "tourstate"
	app.Usage = "evaluate a TSP tour and its neighborhood"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: flagConfig, Value: ".", Usage: "directory holding tourstate.env"},
		cli.StringFlag{Name: flagCities, Usage: "city list file (name,x,y per line)"},
		cli.StringFlag{Name: flagDelimiter, Usage: "field delimiter of the city list (\"tab\" for tabs)"},
		cli.BoolFlag{Name: flagHeader, Usage: "skip the first line of the city list"},
		cli.Int64Flag{Name: flagSeed, Usage: "random seed (0 = fixed default)"},
		cli.BoolFlag{Name: flagShuffle, Usage: "randomize the initial tour order"},
		cli.StringFlag{Name: flagStrategy, Usage: "neighborhood strategy: sample or enumerate"},
		cli.StringFlag{Name: flagLogLevel, Usage: "log level (debug, info, warn, error)"},
	}
	app.Commands = []cli.Command{
		{
			Name:   "cost",
			Usage:  "print the tour and its closed-cycle length",
			Action: runCost,
		},
		{
			Name:   "neighbors",
			Usage:  "print every neighbor of the tour with its length",
			Action: runNeighbors,
		},
		{
			Name:   "neighbor",
			Usage:  "print one random neighbor of the tour",
			Action: runNeighbor,
		},
	}
	return app
}
