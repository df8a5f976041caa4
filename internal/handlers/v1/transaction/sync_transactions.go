package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-sync/internal/logging"
	"github.com/carson-networks/expense-sync/internal/operator/actions"
)

// SyncTransactionsBody is the optional request body for a sync.
type SyncTransactionsBody struct {
	DatedAfter string `json:"datedAfter,omitempty" format:"date" doc:"Re-fetch already stored records dated on or after this day (YYYY-MM-DD) to pick up edits and undeletes"`
}

// SyncTransactionsInput is the Huma input for a sync.
type SyncTransactionsInput struct {
	Body *SyncTransactionsBody
}

type SyncTransactionsResponse struct {
	InsertedCount    int `json:"insertedCount" doc:"Records stored for the first time"`
	UpdatedCount     int `json:"updatedCount" doc:"Stored records edited or undeleted"`
	CategorizedCount int `json:"categorizedCount" doc:"Records that received a category"`
}

type SyncTransactionsOutput struct {
	Body SyncTransactionsResponse
}

// SyncTransactionsHandler handles POST /v1/sync.
type SyncTransactionsHandler struct {
	Operator actionProcessor
}

func NewSyncTransactionsHandler(op actionProcessor) *SyncTransactionsHandler {
	return &SyncTransactionsHandler{Operator: op}
}

// Register registers the sync endpoint with the Huma API.
func (h *SyncTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "sync-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/sync",
		Summary:     "Sync transactions",
		Description: "Pulls new transactions from the remote ledger, stores them and categorizes the new ones.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseSyncTransactionsInput(input *SyncTransactionsInput) (*time.Time, error) {
	if input.Body == nil || input.Body.DatedAfter == "" {
		return nil, nil
	}

	datedAfter, err := time.Parse(time.DateOnly, input.Body.DatedAfter)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid datedAfter", err)
	}
	return &datedAfter, nil
}

func (h *SyncTransactionsHandler) handle(ctx context.Context, input *SyncTransactionsInput) (*SyncTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	datedAfter, err := parseSyncTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.Sync{DatedAfter: datedAfter}

	stopTimer := logData.AddTiming("sync")
	err = h.Operator.Process(ctx, action)
	stopTimer()
	if err != nil {
		return nil, toHumaError("failed to sync transactions", err)
	}

	result := action.Result
	logData.AddData("insertedCount", result.InsertedCount)
	logData.AddData("updatedCount", result.UpdatedCount)
	logData.AddData("categorizedCount", result.CategorizedCount)

	return &SyncTransactionsOutput{Body: SyncTransactionsResponse{
		InsertedCount:    result.InsertedCount,
		UpdatedCount:     result.UpdatedCount,
		CategorizedCount: result.CategorizedCount,
	}}, nil
}
