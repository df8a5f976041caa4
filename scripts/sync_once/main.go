package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/expense-sync/internal/app"
	"github.com/carson-networks/expense-sync/internal/config"
	"github.com/carson-networks/expense-sync/internal/ledger"
	"github.com/carson-networks/expense-sync/internal/logging"
	"github.com/carson-networks/expense-sync/internal/service"
)

var (
	errc  = color.New(color.BgRed, color.FgWhite).PrintfFunc()
	label = color.New(color.BgBlue, color.FgWhite).SprintfFunc()
	count = color.New(color.FgGreen).SprintfFunc()
)

func main() {
	cliApp := &cli.App{
		Name:  "sync_once",
		Usage: "run one ledger sync or recategorization without the HTTP server",
		Commands: []*cli.Command{
			{
				Name:  "sync",
				Usage: "pull new transactions and categorize them",
				Flags: []cli.Flag{
					&cli.TimestampFlag{
						Name:   "dated-after",
						Usage:  "re-fetch stored transactions dated on or after this day",
						Layout: time.DateOnly,
					},
				},
				Action: runSync,
			},
			{
				Name:  "recategorize",
				Usage: "assign categories to stored transactions",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "year"},
					&cli.IntFlag{Name: "month"},
					&cli.BoolFlag{Name: "force", Usage: "re-classify categorized rows and bypass the cache"},
				},
				Action: runRecategorize,
			},
			{
				Name:   "friends",
				Usage:  "list remote friends with outstanding balances",
				Action: runFriends,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		errc(" ERROR ")
		fmt.Printf(" %v\n", err)
		os.Exit(1)
	}
}

func setup(c *cli.Context) (*app.App, error) {
	cfg, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, err
	}
	logger := logging.SetupLogging(cfg.LogLevel)
	return app.New(c.Context, cfg, logger)
}

func runSync(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.Service.Sync.Sync(c.Context, c.Timestamp("dated-after"))
	if err != nil {
		return err
	}

	fmt.Printf("%s inserted %s  updated %s  categorized %s\n",
		label(" SYNC "),
		count("%d", result.InsertedCount),
		count("%d", result.UpdatedCount),
		count("%d", result.CategorizedCount))

	meta, err := a.Storage.SyncMeta.Get(c.Context)
	if err != nil {
		return err
	}
	if meta != nil {
		fmt.Printf("%s total synced %s  last sync %s\n",
			label(" META "),
			count("%d", meta.TotalSynced),
			meta.LastSyncAt.Format(time.RFC3339))
	}
	return nil
}

func runRecategorize(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.Close()

	var filter service.RecategorizeFilter
	if c.IsSet("year") {
		year := c.Int("year")
		filter.Year = &year
	}
	if c.IsSet("month") {
		month := c.Int("month")
		filter.Month = &month
	}

	result, err := a.Service.Categorize.Recategorize(c.Context, filter, c.Bool("force"))
	if err != nil {
		return err
	}

	fmt.Printf("%s categorized %s\n", label(" RECATEGORIZE "), count("%d", result.CategorizedCount))
	return nil
}

func runFriends(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.Close()

	friends, err := a.Ledger.ListFriends(c.Context)
	if err != nil {
		return err
	}

	for _, f := range friends {
		printFriend(f)
	}
	return nil
}

func printFriend(f ledger.Friend) {
	name := f.FirstName
	if f.LastName != "" {
		name += " " + f.LastName
	}
	color.New(color.BgWhite, color.FgBlack).Printf(" %-30s ", name)
	if len(f.Balance) == 0 {
		fmt.Println(" settled")
		return
	}
	for _, b := range f.Balance {
		amount := b.Amount
		c := color.New(color.FgGreen)
		if amount.IsNegative() {
			c = color.New(color.FgRed)
		}
		c.Printf(" %10s %3s", amount.StringFixed(2), b.CurrencyCode)
	}
	fmt.Println()
}
