package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-sync/internal/logging"
	"github.com/carson-networks/expense-sync/internal/operator/actions"
	"github.com/carson-networks/expense-sync/internal/service"
)

// RecategorizeTransactionsInput is the Huma input for a recategorization.
// Zero year or month means no filter on that part of the date.
type RecategorizeTransactionsInput struct {
	Year  int  `query:"year" minimum:"1" doc:"Only transactions that occurred in this year"`
	Month int  `query:"month" minimum:"1" maximum:"12" doc:"Only transactions that occurred in this month, of every year when year is absent"`
	Force bool `query:"force" doc:"Re-classify transactions that already have a category, bypassing cached answers"`
}

type RecategorizeTransactionsResponse struct {
	CategorizedCount int `json:"categorizedCount" doc:"Records that received a category"`
}

type RecategorizeTransactionsOutput struct {
	Body RecategorizeTransactionsResponse
}

// RecategorizeTransactionsHandler handles POST /v1/recategorize.
type RecategorizeTransactionsHandler struct {
	Operator actionProcessor
}

func NewRecategorizeTransactionsHandler(op actionProcessor) *RecategorizeTransactionsHandler {
	return &RecategorizeTransactionsHandler{Operator: op}
}

func (h *RecategorizeTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "recategorize-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/recategorize",
		Summary:     "Recategorize transactions",
		Description: "Assigns categories to stored transactions, optionally limited to a year and month.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func toRecategorizeFilter(input *RecategorizeTransactionsInput) service.RecategorizeFilter {
	var filter service.RecategorizeFilter
	if input.Year != 0 {
		year := input.Year
		filter.Year = &year
	}
	if input.Month != 0 {
		month := input.Month
		filter.Month = &month
	}
	return filter
}

func (h *RecategorizeTransactionsHandler) handle(ctx context.Context, input *RecategorizeTransactionsInput) (*RecategorizeTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	action := &actions.Recategorize{
		Filter: toRecategorizeFilter(input),
		Force:  input.Force,
	}

	stopTimer := logData.AddTiming("recategorize")
	err := h.Operator.Process(ctx, action)
	stopTimer()
	if err != nil {
		return nil, toHumaError("failed to recategorize transactions", err)
	}

	logData.AddData("categorizedCount", action.Result.CategorizedCount)
	return &RecategorizeTransactionsOutput{Body: RecategorizeTransactionsResponse{
		CategorizedCount: action.Result.CategorizedCount,
	}}, nil
}
