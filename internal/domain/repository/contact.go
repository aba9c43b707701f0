package repository

import (
	"context"

	"github.com/inkpress/printshop/internal/domain/model"
)

// ContactRepository describes persistence operations with contact messages.
type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) (int64, error)
	List(ctx context.Context) ([]model.ContactMessage, error)
	SetStatus(ctx context.Context, id int64, status model.MessageStatus) error
}
