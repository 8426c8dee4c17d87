package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"pokerhands/pkg/deck"
	"pokerhands/pkg/poker/evaluator"
	"pokerhands/pkg/poker/rank"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

// Version is the cli version
var Version = "v0.0.0-dev"

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "always print JSON, even on a terminal",
	}
}

func boardFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "board",
		Aliases: []string{"b"},
		Usage:   "community cards, e.g., 2d9d2c",
	}
}

// textOutput is true when w is a terminal and JSON was not asked for
func textOutput(c *cli.Context) bool {
	if c.Bool("json") {
		return false
	}

	f, ok := c.App.Writer.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func describe(variant string, r rank.Rank) string {
	if r.Description != "" {
		return fmt.Sprintf("%s (strength %d)", r.Description, r.Strength)
	}

	if variant == evaluator.Badugi {
		return fmt.Sprintf("%d card badugi (strength %d)", r.Category, r.Strength)
	}

	return fmt.Sprintf("strength %d", r.Strength)
}

func parseArgs(c *cli.Context) ([][]*deck.Card, []*deck.Card, error) {
	if c.NArg() == 0 {
		return nil, nil, errors.New("at least one hand is required")
	}

	hands := make([][]*deck.Card, c.NArg())
	for i, arg := range c.Args().Slice() {
		hand, err := deck.ParseCards(arg)
		if err != nil {
			return nil, nil, err
		}

		hands[i] = hand
	}

	board, err := deck.ParseCards(c.String("board"))
	if err != nil {
		return nil, nil, err
	}

	return hands, board, nil
}

func evaluateCommand(variant, usage string) *cli.Command {
	return &cli.Command{
		Name:      variant,
		Usage:     usage,
		ArgsUsage: "HAND [HAND...]",
		Flags:     []cli.Flag{boardFlag(), jsonFlag()},
		Action: func(c *cli.Context) error {
			fn, err := evaluator.Lookup(variant)
			if err != nil {
				return err
			}

			hands, board, err := parseArgs(c)
			if err != nil {
				return err
			}

			// a single hand is evaluated, more than one is compared
			if len(hands) == 1 {
				ranks, err := fn(hands[0], board)
				if err != nil {
					return err
				}

				if !textOutput(c) {
					return printJSON(c.App.Writer, ranks)
				}

				for _, r := range ranks {
					_, _ = fmt.Fprintln(c.App.Writer, describe(variant, r))
				}

				return nil
			}

			results, err := evaluator.Compare(c.Context, fn, hands, board)
			if err != nil {
				return err
			}

			if !textOutput(c) {
				return printJSON(c.App.Writer, results)
			}

			for _, r := range results {
				best, _ := rank.Max(r.Ranks...)
				_, _ = fmt.Fprintf(c.App.Writer, "%d. %s: %s\n", r.Place, c.Args().Get(r.Index), describe(variant, best))
			}

			return nil
		},
	}
}

type dealOutput struct {
	Seed     int64  `json:"seed"`
	HashCode string `json:"hashCode"`
	Cards    string `json:"cards"`
}

func dealCommand() *cli.Command {
	var (
		seed  int64
		count int
	)

	return &cli.Command{
		Name:  "deal",
		Usage: "shuffle a deck and deal cards from the top",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:        "seed",
				Usage:       "shuffle seed, 0 picks one at random",
				Destination: &seed,
			},
			&cli.IntFlag{
				Name:        "count",
				Aliases:     []string{"n"},
				Value:       5,
				Destination: &count,
			},
			jsonFlag(),
		},
		Action: func(c *cli.Context) error {
			d := deck.New()
			if err := d.Shuffle(seed); err != nil {
				return err
			}

			hashCode := d.HashCode()
			cards, err := d.DealCards(count, false)
			if err != nil {
				return err
			}

			out := dealOutput{
				Seed:     d.GetSeed(),
				HashCode: hashCode,
				Cards:    deck.CardsToNotation(cards),
			}

			if !textOutput(c) {
				return printJSON(c.App.Writer, out)
			}

			_, _ = fmt.Fprintf(c.App.Writer, "%s\nseed: %d\n", deck.Hand(cards), out.Seed)
			return nil
		},
	}
}

// App returns the handeval cli
func App() *cli.App {
	app := cli.NewApp()
	app.Name = "handeval"
	app.Usage = "evaluate and compare poker hands"
	app.Version = Version
	app.Commands = []*cli.Command{
		evaluateCommand(evaluator.High, "best five-card high hand from 5 to 7 cards"),
		evaluateCommand(evaluator.Badugi, "four-card badugi hand"),
		dealCommand(),
	}

	return app
}

func main() {
	if err := App().RunContext(context.Background(), os.Args); err != nil {
		logrus.WithError(err).Fatal("could not run command")
	}
}
