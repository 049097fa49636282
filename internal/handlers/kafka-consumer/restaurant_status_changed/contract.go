//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=restaurant_status_changed_test
package restaurant_status_changed

import (
	"context"

	"marketplace/internal/service/restaurant"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessStatusChange(ctx context.Context, change restaurant.StatusChange) error
}

// statusChangedEvent is the broker payload published by the restaurant side.
type statusChangedEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
