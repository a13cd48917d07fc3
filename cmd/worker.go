package cmd

import (
	"arcilend/worker"
	"arcilend/worker/accrual"
	"arcilend/worker/notifier"
	"arcilend/worker/oracle"
	"arcilend/worker/payee"
	"sync"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "arcilend ledger worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		db := provideDatabase()
		defer db.Close()

		system := provideSystem()

		propertyStore := providePropertyStore(db)
		walletStore := provideWalletStore(db)
		poolStore := providePoolStore(db)
		accountStore := provideAccountStore(db)
		loanStore := provideLoanStore(db)
		eventStore := provideEventStore(db)
		priceStore := providePriceStore(db)

		poolz := providePoolService()
		accountz := provideAccountService()
		loanz := provideLoanService()
		eventz := provideEventService()
		oraclez := providePriceOracleService()

		jobs := []worker.IJob{
			accrual.New(cfg.App.Location, db, loanStore, loanz),
		}

		if cfg.Oracle.EndPoint != "" {
			jobs = append(jobs, oracle.New(&cfg, db, priceStore, oraclez))
		}

		// the notifier drains delivered events, so it only runs with a
		// webhook configured
		if cfg.Notifier.EndPoint != "" {
			jobs = append(jobs, notifier.New(cfg.App.Location, eventStore, eventz))
		}

		for _, job := range jobs {
			if err := job.Start(); err != nil {
				log.WithError(err).Fatal("start job failed")
			}
			defer job.Stop()
		}

		workers := []worker.Worker{
			payee.NewPayee(db, system, propertyStore, walletStore, poolStore, accountStore, loanStore, eventStore, priceStore, poolz, accountz, loanz),
		}

		wg := sync.WaitGroup{}
		for _, w := range workers {
			wg.Add(1)

			go func(worker worker.Worker) {
				defer wg.Done()
				worker.Run(ctx)
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
