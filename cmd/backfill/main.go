package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	repository2 "presupuesto_svc/internal/adapter/persistence/repository"
	"presupuesto_svc/internal/infrastructure/database"
	"presupuesto_svc/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// backfill is the operator tool for re-materializing baselines: previewing
// what a run would write (--dry-run) and repairing historically-zeroed
// allocations (--force-rewrite-zeros). It shares the engine with the API and
// the queue consumer, so concurrent use is safe.

var (
	flagBaselineID        string
	flagProjectID         string
	flagDryRun            bool
	flagForceRewriteZeros bool
)

func main() {
	root := &cobra.Command{
		Use:   "backfill",
		Short: "Re-materialize baselines into rubros and monthly allocations",
	}

	run := &cobra.Command{
		Use:   "run",
		Short: "Materialize one baseline",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ddb := database.ConnectDynamoDB()
			resolver := usecase.NewTaxonomyResolver(repository2.NewTaxonomyDynamoRepository(ddb))
			uc := usecase.NewMaterializerUseCase(
				repository2.NewBaselineDynamoRepository(ddb),
				repository2.NewRubroDynamoRepository(ddb),
				repository2.NewAllocationDynamoRepository(ddb),
				resolver,
			)

			result, err := uc.MaterializeByID(ctx, flagBaselineID, flagProjectID, usecase.MaterializeOptions{
				DryRun:            flagDryRun,
				ForceRewriteZeros: flagForceRewriteZeros,
			})
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	run.Flags().StringVar(&flagBaselineID, "baseline-id", "", "baseline to materialize (required)")
	run.Flags().StringVar(&flagProjectID, "project-id", "", "expected project id (cross-checked against the stored baseline)")
	run.Flags().BoolVar(&flagDryRun, "dry-run", false, "compute everything, write nothing")
	run.Flags().BoolVar(&flagForceRewriteZeros, "force-rewrite-zeros", false, "overwrite still-zero allocations with new positive amounts")
	if err := run.MarkFlagRequired("baseline-id"); err != nil {
		log.Fatalf("flag wiring: %v", err)
	}

	root.AddCommand(run)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
