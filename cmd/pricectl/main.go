// pricectl edits a host pricing file offline and prints resolved prices.
//
// Usage:
//
//	pricectl --file pricing.json base set --amount 120
//	pricectl rule add --name "Summer" --type percentage --value 20 --start 2024-06-01 --end 2024-08-31
//	pricectl calendar --year 2024 --month 7
package main

import (
	"fmt"
	"io"
	"os"

	"host-pricing/internal/domain/pricing"
	"host-pricing/internal/pricingfile"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command tree. Results go to stdout, warnings to stderr.
func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "pricectl",
		Writer:    stdout,
		ErrWriter: stderr,
		Usage:     "Edit host pricing rules and preview nightly prices",
		Version:   version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Value:   "pricing.json",
				Usage:   "Pricing records file",
				EnvVars: []string{"PRICECTL_FILE"},
			},
			&cli.StringFlag{
				Name:    "host",
				Usage:   "Host id used when the file does not exist yet",
				EnvVars: []string{"PRICECTL_HOST"},
			},
		},
		Commands: []*cli.Command{
			baseCommand(),
			ruleCommand(),
			overrideCommand(),
			resolveCommand(),
			calendarCommand(),
			tokenCommand(),
		},
	}
}

// =============================================================================
// FILE HELPERS
// =============================================================================

func loadStore(c *cli.Context) (*pricing.RuleStore, uuid.UUID, error) {
	hostID := uuid.Nil
	if raw := c.String("host"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, uuid.Nil, fmt.Errorf("invalid --host: %w", err)
		}
		hostID = id
	}
	return pricingfile.Load(c.String("file"), hostID)
}

// mutateStore loads the file, applies fn and writes the result back.
func mutateStore(c *cli.Context, fn func(store *pricing.RuleStore) error) error {
	store, hostID, err := loadStore(c)
	if err != nil {
		return err
	}
	if err := fn(store); err != nil {
		return err
	}
	return pricingfile.Save(c.String("file"), hostID, store)
}

// =============================================================================
// BASE COMMAND
// =============================================================================

func baseCommand() *cli.Command {
	return &cli.Command{
		Name:  "base",
		Usage: "Manage the default nightly price",
		Subcommands: []*cli.Command{
			{
				Name:  "set",
				Usage: "Set the base price (non-numeric input stores 0)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "amount", Aliases: []string{"a"}, Required: true},
				},
				Action: func(c *cli.Context) error {
					return mutateStore(c, func(store *pricing.RuleStore) error {
						store.SetBasePriceFromString(c.String("amount"))
						fmt.Fprintf(c.App.Writer, "base price set to %s\n", store.BasePrice().StringFixed(2))
						return nil
					})
				},
			},
			{
				Name:  "show",
				Usage: "Print the base price",
				Action: func(c *cli.Context) error {
					store, _, err := loadStore(c)
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, store.BasePrice().StringFixed(2))
					return nil
				},
			},
		},
	}
}
