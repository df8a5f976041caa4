package operator

import (
	"context"

	"github.com/carson-networks/expense-sync/internal/operator/actions"
	"github.com/carson-networks/expense-sync/internal/service"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	service *service.Service
	queue   chan ActionItem
}

func NewOperator(svc *service.Service, queue chan ActionItem) *Operator {
	return &Operator{
		service: svc,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller may have given up while the item sat in the queue.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err := item.action.Perform(item.ctx, o.service)
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
