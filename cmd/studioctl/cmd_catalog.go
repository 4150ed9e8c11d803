package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the pricing catalog",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the catalog and report every problem",
		Args:  cobra.NoArgs,
		RunE:  runCatalogCheck,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print feature groups and business types",
		Args:  cobra.NoArgs,
		RunE:  runCatalogList,
	})
	return cmd
}

func runCatalogCheck(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	// Default() is not validated on load.
	if err := cat.Validate(); err != nil {
		return err
	}

	features := 0
	for _, g := range cat.Groups {
		features += len(g.Features)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d groups, %d features, %d business types\n",
		len(cat.Groups), features, len(cat.BusinessTypes))
	return nil
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, g := range cat.Groups {
		fmt.Fprintf(w, "%s\n", g.Name)
		for _, f := range g.Features {
			countable := ""
			if f.Countable {
				countable = fmt.Sprintf("per page, min %d", f.MinCount)
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", f.Name, tierPrices(cat, f), countable)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Business types")
	for _, bt := range cat.BusinessTypes {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", bt.Key, bt.Name, cat.Format(bt.BasePrice), bt.Timeline)
	}
	return w.Flush()
}

func tierPrices(cat *catalog.Catalog, f catalog.Feature) string {
	out := ""
	for i, t := range f.Tiers {
		if i > 0 {
			out += " / "
		}
		out += fmt.Sprintf("%s %s", t.Name, cat.Format(t.Price))
	}
	return out
}
