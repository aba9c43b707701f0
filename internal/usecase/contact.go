package usecase

import (
	"context"

	domainErrors "github.com/inkpress/printshop/internal/domain/errors"
	"github.com/inkpress/printshop/internal/domain/model"
	"github.com/inkpress/printshop/internal/domain/repository"
)

// ContactUseCase handles public contact-form submissions and their triage.
type ContactUseCase struct {
	messages repository.ContactRepository
}

// NewContactUseCase constructs ContactUseCase.
func NewContactUseCase(messages repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{messages: messages}
}

// Submit validates and stores a contact message.
func (u *ContactUseCase) Submit(ctx context.Context, name, email string, phone, subject *string, message string) error {
	if name == "" || email == "" || message == "" {
		return domainErrors.NewValidation("missing required fields")
	}
	_, err := u.messages.Create(ctx, &model.ContactMessage{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Subject: subject,
		Message: message,
	})
	return err
}

// List returns all messages, newest first.
func (u *ContactUseCase) List(ctx context.Context) ([]model.ContactMessage, error) {
	return u.messages.List(ctx)
}

// SetStatus moves a message between the new, read and replied states.
func (u *ContactUseCase) SetStatus(ctx context.Context, id int64, status model.MessageStatus) error {
	if !status.Valid() {
		return domainErrors.NewValidation("unknown message status %q", status)
	}
	return u.messages.SetStatus(ctx, id, status)
}
