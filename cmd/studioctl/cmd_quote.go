package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
	"github.com/ManuelReschke/StudioSite/internal/pkg/pricing"
)

type quoteOptions struct {
	businessType string
	selects      []string
	pages        []string
}

func newQuoteCmd() *cobra.Command {
	opts := &quoteOptions{}
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a business type with optional tier and page changes",
		Example: `  studioctl quote --type portfolio --select "Static Page=Advanced" --pages "Static Page=4"
  studioctl quote --type business --select "Blog="`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuote(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.businessType, "type", "", "business type key")
	cmd.Flags().StringArrayVar(&opts.selects, "select", nil, `"Feature=Tier"; an empty tier removes the feature`)
	cmd.Flags().StringArrayVar(&opts.pages, "pages", nil, `"Feature=N" page count for a countable feature`)
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func runQuote(cmd *cobra.Command, opts *quoteOptions) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	state, err := pricing.NewState(cat, opts.businessType)
	if err != nil {
		return err
	}

	reqs, err := quoteActions(state, opts)
	if err != nil {
		return err
	}
	if state, err = pricing.ReduceAll(cat, state, reqs); err != nil {
		return err
	}

	q, err := pricing.CalculateState(cat, state)
	if err != nil {
		return err
	}
	return printQuote(cmd, cat, q)
}

// quoteActions turns the flags into reducer actions, tier changes first.
func quoteActions(state pricing.State, opts *quoteOptions) ([]pricing.ActionRequest, error) {
	var reqs []pricing.ActionRequest
	for _, s := range opts.selects {
		feature, tier, err := splitPair(s)
		if err != nil {
			return nil, fmt.Errorf("--select: %w", err)
		}
		if tier == "" {
			reqs = append(reqs, pricing.ActionRequest{Type: pricing.ActionClearTier, Feature: feature})
			continue
		}
		reqs = append(reqs, pricing.ActionRequest{Type: pricing.ActionSelectTier, Feature: feature, Tier: catalog.TierName(tier)})
	}
	for _, p := range opts.pages {
		feature, value, err := splitPair(p)
		if err != nil {
			return nil, fmt.Errorf("--pages: %w", err)
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("--pages: invalid page count %q", value)
		}
		reqs = append(reqs, pricing.ActionRequest{
			Type:    pricing.ActionSetPageNames,
			Feature: feature,
			Names:   pageNames(state.PageNames[feature], n),
		})
	}
	return reqs, nil
}

// pageNames keeps the first n existing names and numbers the rest.
func pageNames(existing []string, n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i < len(existing) {
			names = append(names, existing[i])
			continue
		}
		names = append(names, fmt.Sprintf("Page %d", i+1))
	}
	return names
}

func splitPair(s string) (string, string, error) {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("expected \"Feature=Value\", got %q", s)
	}
	return key, strings.TrimSpace(value), nil
}

func printQuote(cmd *cobra.Command, cat *catalog.Catalog, q pricing.Quote) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Business type\t%s\n", q.BusinessType)
	fmt.Fprintf(w, "Base price\t%s\n", cat.Format(q.BasePrice))
	for _, l := range q.Lines {
		switch {
		case l.Removed:
			fmt.Fprintf(w, "  %s\tremoved\t\n", l.Feature)
		case l.Skipped != "":
			fmt.Fprintf(w, "  %s\tskipped (%s)\t\n", l.Feature, l.Skipped)
		case l.Amount != 0:
			fmt.Fprintf(w, "  %s\t%s x%d\t%s\n", l.Feature, l.Tier, l.Count, cat.Format(l.Amount))
		}
	}
	fmt.Fprintf(w, "Total\t%s\n", cat.Format(q.Total))
	if q.BelowBase {
		fmt.Fprintln(w, "note\ttotal is below the base price")
	}
	return w.Flush()
}
