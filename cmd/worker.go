package cmd

import (
	"sync"

	"estable/worker"
	"estable/worker/accruer"
	"estable/worker/liquidator"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "estable job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		workers := []worker.Worker{
			liquidator.New(provideConfig(), providePositionStore(database), provideLendingService(database)),
			accruer.New(provideVaultStore(database), provideVaultService(database), providePropertyStore(database)),
		}

		wg := sync.WaitGroup{}
		for _, w := range workers {
			wg.Add(1)

			go func(worker worker.Worker) {
				defer wg.Done()
				_ = worker.Run(ctx)
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
