package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/pkg/errors"

	"github.com/carson-networks/expense-sync/internal/ledger"
	"github.com/carson-networks/expense-sync/internal/operator/actions"
	"github.com/carson-networks/expense-sync/internal/service"
)

// actionProcessor runs an action on the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// toHumaError maps pipeline failures onto HTTP statuses.
func toHumaError(msg string, err error) error {
	var transportErr *ledger.TransportError
	switch {
	case errors.As(err, &transportErr):
		return huma.NewError(http.StatusBadGateway, msg, err)
	case errors.Is(err, service.ErrInvalidFilter):
		return huma.NewError(http.StatusBadRequest, msg, err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return huma.NewError(http.StatusServiceUnavailable, msg, err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
