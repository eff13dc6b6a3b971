package accruer

import (
	"context"
	"time"

	"estable/core"
	"estable/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
)

// checkpointKey property key of the last fully accrued vault
const checkpointKey = "vault_accrue_checkpoint"

// Worker vault accrual worker. Touches every vault account on a slow
// cadence so yield records keep flowing for idle depositors.
type Worker struct {
	worker.TickWorker
	vaults     core.IVaultStore
	service    core.IVaultService
	properties property.Store
}

// New new accrual worker
func New(vaults core.IVaultStore, service core.IVaultService, properties property.Store) *Worker {
	return &Worker{
		TickWorker: worker.TickWorker{
			Delay:    time.Minute,
			ErrDelay: 5 * time.Minute,
		},
		vaults:     vaults,
		service:    service,
		properties: properties,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "accruer")

	vaults, err := w.vaults.All(ctx)
	if err != nil {
		log.WithError(err).Errorln("list vaults")
		return err
	}

	now := time.Now()

	for _, v := range vaults {
		accounts, err := w.vaults.ListAccounts(ctx, v.ID)
		if err != nil {
			log.WithError(err).WithField("vault", v.ID).Errorln("list accounts")
			return err
		}

		for _, account := range accounts {
			if _, err := w.service.Accrue(ctx, v.ID, account.UserID, now); err != nil {
				log.WithError(err).WithField("account", account.ID).Errorln("accrue")
				return err
			}
		}

		if err := w.properties.Save(ctx, checkpointKey, v.ID); err != nil {
			log.WithError(err).Errorln("save checkpoint")
			return err
		}
	}

	return nil
}
