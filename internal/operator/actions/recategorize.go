package actions

import (
	"context"

	"github.com/carson-networks/expense-sync/internal/service"
)

type Recategorize struct {
	Filter service.RecategorizeFilter
	Force  bool

	Result *service.CategorizeResult
	IAction
}

func (r *Recategorize) Perform(ctx context.Context, svc *service.Service) error {
	result, err := svc.Categorize.Recategorize(ctx, r.Filter, r.Force)
	r.Result = result
	return err
}
