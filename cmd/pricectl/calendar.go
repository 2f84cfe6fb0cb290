package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"host-pricing/internal/domain/pricing"
	"host-pricing/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func overrideCommand() *cli.Command {
	return &cli.Command{
		Name:  "override",
		Usage: "Pin absolute prices to single dates",
		Subcommands: []*cli.Command{
			{
				Name:  "set",
				Usage: "Set or replace the override of a date",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Required: true},
					&cli.StringFlag{Name: "price", Aliases: []string{"p"}, Required: true},
					&cli.StringFlag{Name: "reason", Aliases: []string{"r"}},
				},
				Action: func(c *cli.Context) error {
					date, err := pricing.ParseDate(c.String("date"))
					if err != nil {
						return err
					}
					var reason *string
					if c.IsSet("reason") {
						r := c.String("reason")
						reason = &r
					}
					return mutateStore(c, func(store *pricing.RuleStore) error {
						store.AddOverride(date, pricing.AmountFromString(c.String("price")), reason)
						return nil
					})
				},
			},
			{
				Name:  "rm",
				Usage: "Remove the override of a date",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Required: true},
				},
				Action: func(c *cli.Context) error {
					date, err := pricing.ParseDate(c.String("date"))
					if err != nil {
						return err
					}
					return mutateStore(c, func(store *pricing.RuleStore) error {
						if !store.RemoveOverride(date) {
							return fmt.Errorf("no override on %s", date)
						}
						return nil
					})
				},
			},
		},
	}
}

func resolveCommand() *cli.Command {
	return &cli.Command{
		Name:  "resolve",
		Usage: "Print the effective price of one date",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			date, err := pricing.ParseDate(c.String("date"))
			if err != nil {
				return err
			}
			store, _, err := loadStore(c)
			if err != nil {
				return err
			}
			res := store.Explain(date)
			fmt.Fprintf(c.App.Writer, "%s %s%s\n", res.Date, res.Price.StringFixed(2), source(store, res))
			return nil
		},
	}
}

func calendarCommand() *cli.Command {
	now := time.Now()
	return &cli.Command{
		Name:  "calendar",
		Usage: "Print every day of a month with its price",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "year", Aliases: []string{"y"}, Value: now.Year()},
			&cli.IntFlag{Name: "month", Aliases: []string{"m"}, Value: int(now.Month())},
		},
		Action: func(c *cli.Context) error {
			month := c.Int("month")
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid --month %d", month)
			}
			store, _, err := loadStore(c)
			if err != nil {
				return err
			}
			grid := store.ResolveMonth(c.Int("year"), time.Month(month))

			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tDAY\tPRICE\tSOURCE")
			for _, d := range grid.Days {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Date, d.Date.Weekday().String()[:3], d.Price.StringFixed(2), strings.TrimPrefix(source(store, d), " "))
			}
			return w.Flush()
		},
	}
}

func source(store *pricing.RuleStore, res pricing.Resolution) string {
	if res.Overridden {
		return " override"
	}
	if len(res.AppliedRules) == 0 {
		return " base"
	}
	names := make([]string, 0, len(res.AppliedRules))
	for _, id := range res.AppliedRules {
		if r, ok := store.Rule(id); ok {
			names = append(names, r.Name())
		}
	}
	return " " + strings.Join(names, " > ")
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Mint a bearer token for a host (development only)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Required: true},
			&cli.StringFlag{Name: "secret", Required: true, EnvVars: []string{"JWT_SECRET"}},
			&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour},
		},
		Action: func(c *cli.Context) error {
			hostID, err := uuid.Parse(c.String("host"))
			if err != nil {
				return fmt.Errorf("invalid --host: %w", err)
			}
			token, err := jwt.NewService(c.String("secret"), c.Duration("ttl")).GenerateToken(hostID)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}
}
