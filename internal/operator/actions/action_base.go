package actions

import (
	"context"

	"github.com/carson-networks/expense-sync/internal/service"
)

type IAction interface {
	Perform(ctx context.Context, svc *service.Service) error
}
