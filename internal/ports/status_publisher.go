package ports

import (
	"context"

	"github.com/Gunvolt24/reserva/internal/domain"
)

// StatusPublisher — публикация событий смены статуса резерва.
type StatusPublisher interface {
	PublishStatusChanged(ctx context.Context, event *domain.StatusChangedEvent) error
	Close() error
}
