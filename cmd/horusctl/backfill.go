package main

import (
	"fmt"

	"github.com/horus-listing/internal/usecase"
	"github.com/spf13/cobra"
)

var backfillDryRun bool

var backfillCmd = &cobra.Command{
	Use:   "backfill-codes",
	Short: "Assign HorusNNN codes to listings that have none",
	Long: `Walks all listings from oldest to newest and gives every listing
without a code the code Horus + its 1-based position, zero-padded to three
digits. Listings that already have a code are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runBackfill,
}

func init() {
	backfillCmd.Flags().BoolVar(&backfillDryRun, "dry-run", false, "Print assignments without writing them")
}

func runBackfill(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	uc := usecase.NewBackfillUseCase(e.repos.Properties, e.log)
	result, err := uc.BackfillCodes(ctx, backfillDryRun)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, a := range result.Assignments {
		fmt.Fprintf(out, "%s\t%s\n", a.ID, a.Code)
	}
	if result.DryRun {
		fmt.Fprintf(out, "dry run: %d of %d listings would get a code\n", len(result.Assignments), result.Total)
		return nil
	}
	fmt.Fprintf(out, "updated %d of %d listings, %d failed\n", result.Updated, result.Total, result.Failed)
	return nil
}
