package actions

import (
	"context"
	"time"

	"github.com/carson-networks/expense-sync/internal/service"
)

// Sync runs one ledger ingestion pass. Result is set once Perform returns.
type Sync struct {
	DatedAfter *time.Time

	Result *service.SyncResult
	IAction
}

func (s *Sync) Perform(ctx context.Context, svc *service.Service) error {
	result, err := svc.Sync.Sync(ctx, s.DatedAfter)
	s.Result = result
	return err
}
