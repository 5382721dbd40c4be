package main

import (
	"fmt"
	"time"

	"github.com/horus-listing/internal/repository/cache"
	"github.com/horus-listing/internal/usecase"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create cities and areas from a YAML file",
	Long: `Reads a YAML list of cities with their areas and creates the ones
that are missing. Existing cities and areas are skipped, so the command can
be re-run safely.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "cities.yaml", "Seed file")
}

func runSeed(cmd *cobra.Command, args []string) error {
	seed, err := usecase.LoadSeedFile(seedFile)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	refCache := cache.NewReferenceCache(e.repos.Cities, e.repos.Areas, e.log, e.cfg.Cache.CitiesCacheTTL, time.Now)
	result, err := usecase.NewSeedUseCase(refCache, e.log).Seed(ctx, seed)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "cities created: %d, areas created: %d, skipped: %d\n",
		result.CitiesCreated, result.AreasCreated, result.Skipped)
	return nil
}
