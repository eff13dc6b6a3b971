package liquidator

import (
	"context"
	"time"

	"estable/core"
	"estable/pkg/estable"
	"estable/worker"

	"github.com/fox-one/pkg/logger"
)

// Worker liquidation worker. Scans active positions and liquidates every
// eligible one as the system actor.
type Worker struct {
	worker.TickWorker
	system    *core.Config
	positions core.IPositionStore
	lending   core.ILendingService
}

// New new liquidation worker
func New(system *core.Config, positions core.IPositionStore, lending core.ILendingService) *Worker {
	return &Worker{
		TickWorker: worker.TickWorker{
			Delay:    10 * time.Second,
			ErrDelay: time.Minute,
		},
		system:    system,
		positions: positions,
		lending:   lending,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "liquidator")

	positions, err := w.positions.ListActive(ctx)
	if err != nil {
		log.WithError(err).Errorln("list active positions")
		return err
	}

	now := time.Now()

	for _, p := range positions {
		if !estable.IsLiquidatable(p) {
			continue
		}

		result, err := w.lending.Liquidate(ctx, w.system.App.SystemUserID, p.ID, now)
		if err != nil {
			log.WithError(err).WithField("position", p.ID).Errorln("liquidate")
			continue
		}

		log.WithField("position", result.PositionID).
			Infof("liquidated, penalty %s, seized %s", result.Penalty, result.Seized)
	}

	return nil
}
