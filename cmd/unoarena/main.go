// Command unoarena runs an UNO bot tournament and prints the final
// standings.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/savaleriy/unoarena/bots"
	"github.com/savaleriy/unoarena/tournament"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		format  string
		botList string
		games   int
		seed    int64
		workers int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "unoarena",
		Short: "Run an UNO bot tournament",
		Long: "unoarena pits rule-based UNO bots against each other across a\n" +
			"chosen bracket format and reports the standings.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			log.SetLevel(logrus.WarnLevel)
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			f, err := tournament.ParseFormat(format)
			if err != nil {
				return err
			}
			entrants, err := buildRoster(botList)
			if err != nil {
				return err
			}

			t, err := tournament.New(entrants, tournament.Options{
				Format:        f,
				GamesPerMatch: games,
				Seed:          seed,
				Workers:       workers,
				Logger:        log,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			champion, err := t.Run(ctx)
			if err != nil {
				return err
			}
			printStandings(cmd.OutOrStdout(), t, champion.Name())
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "round-robin",
		"bracket format: single-elimination, double-elimination, round-robin, swiss")
	cmd.Flags().StringVarP(&botList, "bots", "b", "random,random,greedy,wildlast",
		"comma separated bot kinds ("+strings.Join(bots.Kinds, ", ")+")")
	cmd.Flags().IntVarP(&games, "games", "g", 100, "games per match")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "random seed (0 = wall clock)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel matches per round (0 = GOMAXPROCS)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

// buildRoster turns a comma separated list of bot kinds into uniquely
// named entrants, numbering repeats of the same kind.
func buildRoster(list string) ([]tournament.Entrant, error) {
	counts := make(map[string]int)
	var entrants []tournament.Entrant
	for _, kind := range strings.Split(list, ",") {
		kind = strings.TrimSpace(kind)
		if kind == "" {
			continue
		}
		counts[kind]++
		name := fmt.Sprintf("%s-%d", kind, counts[kind])
		factory, err := bots.New(kind, name)
		if err != nil {
			return nil, err
		}
		entrants = append(entrants, tournament.Entrant{Name: name, Factory: factory})
	}
	return entrants, nil
}

func printStandings(w io.Writer, t *tournament.Tournament, champion string) {
	stats := t.Stats()
	fmt.Fprintf(w, "%s tournament: %d players, %d rounds, %d matches, %d games in %s\n",
		stats.Format, stats.Players, stats.Rounds, stats.Matches, stats.Games,
		stats.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "champion: %s\n\n", champion)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if stats.Format == tournament.Swiss {
		fmt.Fprintln(tw, "RANK\tPLAYER\tW\tL\tD\tPTS\tBUCH")
		for _, row := range t.Standings() {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%.1f\n",
				row.Rank, row.Name, row.Wins, row.Losses, row.Draws, row.Points, row.Buchholz)
		}
	} else {
		fmt.Fprintln(tw, "RANK\tPLAYER\tW\tL\tD\tPTS")
		for _, row := range t.Standings() {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\n",
				row.Rank, row.Name, row.Wins, row.Losses, row.Draws, row.Points)
		}
	}
	tw.Flush()
}
