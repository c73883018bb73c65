package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements the invoice mutations. Expected rejections (bad form
// input) come back as a *validation.FormErrors value; only store failures
// travel the error return. Presentation side effects (redirect, view-cache
// invalidation) are the caller's job after a success result.
type Service struct {
	invoices  *repository.InvoiceRepository
	customers *repository.CustomerRepository
	log       *zap.Logger
}

func New(invoices *repository.InvoiceRepository, customers *repository.CustomerRepository, log *zap.Logger) *Service {
	return &Service{invoices: invoices, customers: customers, log: log}
}

// Create validates the form in collecting mode and inserts a new invoice
// dated today, amount stored in cents.
func (s *Service) Create(ctx context.Context, in validation.InvoiceInput) (*models.Invoice, *validation.FormErrors, error) {
	form, formErrs := validation.ParseInvoiceForm(in, "Missing Fields. Failed to Create Invoice.")
	if formErrs != nil {
		return nil, formErrs, nil
	}

	customerID, err := uuid.Parse(form.CustomerID)
	if err != nil {
		return nil, nil, repository.ErrCustomerNotFound
	}

	inv := &models.Invoice{
		ID:         uuid.New(),
		CustomerID: customerID,
		Amount:     form.AmountCents,
		Status:     form.Status,
		Date:       time.Now().UTC(),
	}
	if err := s.invoices.Create(ctx, inv); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, nil, err
		}
		s.log.Error("create invoice", zap.Error(err))
		return nil, nil, fmt.Errorf("create invoice: %w", err)
	}
	return inv, nil, nil
}

// Update validates the form in collecting mode and rewrites an existing
// invoice's customer link, amount and status.
func (s *Service) Update(ctx context.Context, id string, in validation.InvoiceInput) (*validation.FormErrors, error) {
	if !repository.ValidID(id) {
		return nil, repository.ErrNotFound
	}

	form, formErrs := validation.ParseInvoiceForm(in, "Missing Fields. Failed to Update Invoice.")
	if formErrs != nil {
		return formErrs, nil
	}

	customerID, err := uuid.Parse(form.CustomerID)
	if err != nil {
		return nil, repository.ErrCustomerNotFound
	}

	invoiceID := uuid.MustParse(id)
	if err := s.invoices.Update(ctx, invoiceID, customerID, form.AmountCents, form.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, err
		}
		s.log.Error("update invoice", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return nil, nil
}

// Delete removes an invoice. A malformed or absent id is a not-found
// outcome, never a silent success.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !repository.ValidID(id) {
		return repository.ErrNotFound
	}

	if err := s.invoices.Delete(ctx, uuid.MustParse(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		s.log.Error("delete invoice", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}
