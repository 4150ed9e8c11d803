// Command studioctl is the operator CLI for the studio site: it checks the
// pricing catalog and prices quotes from the shell.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
	"github.com/ManuelReschke/StudioSite/internal/pkg/env"
)

var catalogFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "studioctl",
		Short:         "Operator tools for the studio site",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&catalogFile, "file", "", "catalog YAML file (defaults to CATALOG_FILE, then the built-in catalog)")

	root.AddCommand(newCatalogCmd())
	root.AddCommand(newQuoteCmd())
	return root
}

// loadCatalog resolves --file, then CATALOG_FILE, then the built-in catalog.
func loadCatalog() (*catalog.Catalog, error) {
	path := catalogFile
	if path == "" {
		path = env.GetEnv("CATALOG_FILE", "")
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

func main() {
	env.SetupEnvFile()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
