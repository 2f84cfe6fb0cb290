package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"host-pricing/internal/domain/pricing"
	"host-pricing/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func ruleFlags(required bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: required},
		&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "percentage, fixed or discount", Required: required},
		&cli.StringFlag{Name: "value", Aliases: []string{"v"}, Usage: "Percent for percentage/discount, amount for fixed", Required: required},
		&cli.StringFlag{Name: "start", Usage: "First day (YYYY-MM-DD)", Required: required},
		&cli.StringFlag{Name: "end", Usage: "Last day (YYYY-MM-DD)", Required: required},
		&cli.StringFlag{Name: "applies-to", Value: "all", Usage: "all, weekends, weekdays or holidays"},
	}
}

func ruleCommand() *cli.Command {
	return &cli.Command{
		Name:  "rule",
		Usage: "Manage ordered pricing rules",
		Subcommands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Append a rule to the evaluation order",
				Flags:  ruleFlags(true),
				Action: addRule,
			},
			{
				Name:  "update",
				Usage: "Change fields of a rule, keeping its position",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
				}, ruleFlags(false)...),
				Action: updateRule,
			},
			{
				Name:  "rm",
				Usage: "Remove a rule",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
				},
				Action: func(c *cli.Context) error {
					id, err := uuid.Parse(c.String("id"))
					if err != nil {
						return fmt.Errorf("invalid --id: %w", err)
					}
					return mutateStore(c, func(store *pricing.RuleStore) error {
						if !store.RemoveRule(id) {
							return fmt.Errorf("rule %s not found", id)
						}
						return nil
					})
				},
			},
			{
				Name:   "ls",
				Usage:  "List rules in evaluation order",
				Action: listRules,
			},
		},
	}
}

func addRule(c *cli.Context) error {
	kind, err := pricing.NewRuleType(c.String("type"))
	if err != nil {
		return err
	}
	appliesTo, err := pricing.NewAppliesTo(c.String("applies-to"))
	if err != nil {
		return err
	}
	start, err := pricing.ParseDate(c.String("start"))
	if err != nil {
		return err
	}
	end, err := pricing.ParseDate(c.String("end"))
	if err != nil {
		return err
	}
	effect, err := pricing.NewEffect(kind, pricing.AmountFromString(c.String("value")))
	if err != nil {
		return err
	}
	rule := pricing.NewRule(uuid.Nil, c.String("name"), effect, start, end, appliesTo)

	return mutateStore(c, func(store *pricing.RuleStore) error {
		store.AddRule(rule)
		warnRule(c.App.ErrWriter, rule)
		fmt.Fprintln(c.App.Writer, rule.ID())
		return nil
	})
}

func updateRule(c *cli.Context) error {
	id, err := uuid.Parse(c.String("id"))
	if err != nil {
		return fmt.Errorf("invalid --id: %w", err)
	}
	p, err := rulePatchFromFlags(c)
	if err != nil {
		return err
	}
	return mutateStore(c, func(store *pricing.RuleStore) error {
		current, ok := store.Rule(id)
		if !ok {
			return fmt.Errorf("rule %s not found", id)
		}
		updated, err := p.Apply(current)
		if err != nil {
			return err
		}
		store.UpdateRule(id, updated)
		warnRule(c.App.ErrWriter, updated)
		return nil
	})
}

func rulePatchFromFlags(c *cli.Context) (commands.RulePatch, error) {
	var p commands.RulePatch
	if c.IsSet("name") {
		name := c.String("name")
		p.Name = &name
	}
	if c.IsSet("type") {
		kind, err := pricing.NewRuleType(c.String("type"))
		if err != nil {
			return p, err
		}
		p.Type = &kind
	}
	if c.IsSet("value") {
		v := pricing.AmountFromString(c.String("value"))
		p.Value = &v
	}
	if c.IsSet("start") {
		d, err := pricing.ParseDate(c.String("start"))
		if err != nil {
			return p, err
		}
		p.StartDate = &d
	}
	if c.IsSet("end") {
		d, err := pricing.ParseDate(c.String("end"))
		if err != nil {
			return p, err
		}
		p.EndDate = &d
	}
	if c.IsSet("applies-to") {
		a, err := pricing.NewAppliesTo(c.String("applies-to"))
		if err != nil {
			return p, err
		}
		p.AppliesTo = &a
	}
	return p, nil
}

func listRules(c *cli.Context) error {
	store, _, err := loadStore(c)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tNAME\tTYPE\tVALUE\tSTART\tEND\tAPPLIES TO")
	for i, r := range store.Rules() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, r.ID(), r.Name(), r.Type(), r.Value().String(), r.StartDate(), r.EndDate(), r.AppliesTo())
	}
	return w.Flush()
}

// warnRule reports accepted but suspicious rules on stderr.
func warnRule(w io.Writer, r pricing.Rule) {
	if r.Effect().IsAdvisoryOutOfRange() {
		fmt.Fprintf(w, "warning: discount %s is outside 0..100\n", r.Value().String())
	}
	if r.Period().IsInverted() {
		fmt.Fprintf(w, "warning: start %s is after end %s, the rule never applies\n", r.StartDate(), r.EndDate())
	}
	if r.AppliesTo() == pricing.AppliesToHolidays {
		fmt.Fprintln(w, "warning: holiday rules are stored but never applied")
	}
	if r.Name() == "" {
		fmt.Fprintln(w, "warning: rules without a name are rejected by the server on save")
	}
}
