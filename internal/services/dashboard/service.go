package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/money"
	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const itemsPerPage = 6

// Service serves the dashboard read side: revenue, latest invoices,
// summary cards and filtered listings.
type Service struct {
	invoices  *repository.InvoiceRepository
	customers *repository.CustomerRepository
	revenue   *repository.RevenueRepository
	log       *zap.Logger
}

func New(invoices *repository.InvoiceRepository, customers *repository.CustomerRepository, revenue *repository.RevenueRepository, log *zap.Logger) *Service {
	return &Service{invoices: invoices, customers: customers, revenue: revenue, log: log}
}

type LatestInvoice struct {
	ID       string `json:"id"`
	Amount   string `json:"amount"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
}

type CardData struct {
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

type InvoiceRow struct {
	ID       string    `json:"id"`
	Amount   int64     `json:"amount"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}

type InvoiceDetail struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customerId"`
	Amount     float64 `json:"amount"` // decimal dollars for form display
	Status     string  `json:"status"`
}

type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CustomerRow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ImageURL     string `json:"image_url"`
	TotalPending string `json:"total_pending"`
	TotalPaid    string `json:"total_paid"`
}

func (s *Service) Revenue(ctx context.Context) ([]models.Revenue, error) {
	revenue, err := s.revenue.FindAll(ctx)
	if err != nil {
		s.log.Error("fetch revenue", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch revenue data")
	}
	return revenue, nil
}

func (s *Service) LatestInvoices(ctx context.Context) ([]LatestInvoice, error) {
	invoices, err := s.invoices.FindLatest(ctx, 5)
	if err != nil {
		s.log.Error("fetch latest invoices", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch the latest invoices")
	}

	latest := make([]LatestInvoice, 0, len(invoices))
	for _, inv := range invoices {
		latest = append(latest, LatestInvoice{
			ID:       inv.ID.String(),
			Amount:   money.FormatCents(inv.Amount),
			Name:     inv.Customer.Name,
			ImageURL: inv.Customer.ImageURL,
			Email:    inv.Customer.Email,
		})
	}
	return latest, nil
}

// CardData runs its three aggregate queries in parallel.
func (s *Service) CardData(ctx context.Context) (CardData, error) {
	var (
		invoiceCount  int64
		customerCount int64
		paidTotal     int64
		pendingTotal  int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.invoices.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.customers.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		if paidTotal, err = s.invoices.SumAmountByStatus(ctx, models.InvoiceStatusPaid); err != nil {
			return err
		}
		pendingTotal, err = s.invoices.SumAmountByStatus(ctx, models.InvoiceStatusPending)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("fetch card data", zap.Error(err))
		return CardData{}, fmt.Errorf("failed to fetch card data")
	}

	return CardData{
		NumberOfCustomers:    customerCount,
		NumberOfInvoices:     invoiceCount,
		TotalPaidInvoices:    money.FormatCents(paidTotal),
		TotalPendingInvoices: money.FormatCents(pendingTotal),
	}, nil
}

func (s *Service) FilteredInvoices(ctx context.Context, query string, page int) ([]InvoiceRow, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * itemsPerPage

	invoices, err := s.invoices.FindFiltered(ctx, query, itemsPerPage, offset)
	if err != nil {
		s.log.Error("fetch filtered invoices", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch invoices")
	}

	rows := make([]InvoiceRow, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, InvoiceRow{
			ID:       inv.ID.String(),
			Amount:   inv.Amount,
			Date:     inv.Date,
			Status:   inv.Status,
			Name:     inv.Customer.Name,
			Email:    inv.Customer.Email,
			ImageURL: inv.Customer.ImageURL,
		})
	}
	return rows, nil
}

func (s *Service) InvoicesPages(ctx context.Context, query string) (int, error) {
	count, err := s.invoices.CountFiltered(ctx, query)
	if err != nil {
		s.log.Error("count filtered invoices", zap.String("query", query), zap.Error(err))
		return 0, fmt.Errorf("failed to fetch total number of invoices")
	}
	return int(math.Ceil(float64(count) / float64(itemsPerPage))), nil
}

// InvoiceByID validates the id shape before touching the store and returns
// the amount converted back to decimal dollars.
func (s *Service) InvoiceByID(ctx context.Context, id string) (*InvoiceDetail, error) {
	if !repository.ValidID(id) {
		return nil, repository.ErrNotFound
	}

	inv, err := s.invoices.GetByID(ctx, uuid.MustParse(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		s.log.Error("fetch invoice", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch invoice")
	}

	return &InvoiceDetail{
		ID:         inv.ID.String(),
		CustomerID: inv.CustomerID.String(),
		Amount:     money.CentsToDollars(inv.Amount),
		Status:     inv.Status,
	}, nil
}

func (s *Service) Customers(ctx context.Context) ([]CustomerField, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		s.log.Error("fetch customers", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch all customers")
	}

	fields := make([]CustomerField, 0, len(customers))
	for _, c := range customers {
		fields = append(fields, CustomerField{ID: c.ID.String(), Name: c.Name})
	}
	return fields, nil
}

func (s *Service) FilteredCustomers(ctx context.Context, query string) ([]CustomerRow, error) {
	customers, err := s.customers.FindFiltered(ctx, query)
	if err != nil {
		s.log.Error("fetch filtered customers", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch customer table")
	}

	rows := make([]CustomerRow, 0, len(customers))
	for _, c := range customers {
		var totalPaid, totalPending int64
		for _, inv := range c.Invoices {
			switch inv.Status {
			case models.InvoiceStatusPaid:
				totalPaid += inv.Amount
			case models.InvoiceStatusPending:
				totalPending += inv.Amount
			}
		}
		rows = append(rows, CustomerRow{
			ID:           c.ID.String(),
			Name:         c.Name,
			Email:        c.Email,
			ImageURL:     c.ImageURL,
			TotalPending: money.FormatCents(totalPending),
			TotalPaid:    money.FormatCents(totalPaid),
		})
	}
	return rows, nil
}
