package workers

import (
	"context"
	"log/slog"
)

type Recoverer interface {
	RecoverScheduled(ctx context.Context) (int, error)
}

// RecoveryWorker re-arms scheduled greetings once at startup, then exits.
type RecoveryWorker struct {
	log       *slog.Logger
	recoverer Recoverer
}

func NewRecoveryWorker(log *slog.Logger, recoverer Recoverer) *RecoveryWorker {
	return &RecoveryWorker{log: log, recoverer: recoverer}
}

func (w *RecoveryWorker) Run(ctx context.Context) error {
	armed, err := w.recoverer.RecoverScheduled(ctx)
	if err != nil {
		w.log.Error("Scheduled greetings not recovered", "error", err)
		return err
	}
	w.log.Info("Scheduled greetings recovered", "armed", armed)
	return nil
}
