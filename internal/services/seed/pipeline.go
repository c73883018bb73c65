package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"invoice-dashboard-backend/internal/fixtures"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Fixed bcrypt cost, matching the salt rounds of the upstream dataset.
const hashCost = 10

// Counts is the per-entity summary returned on success.
type Counts struct {
	Users     int `json:"users"`
	Customers int `json:"customers"`
	Invoices  int `json:"invoices"`
	Revenue   int `json:"revenue"`
}

// Pipeline populates an empty or partially-populated store with the fixture
// dataset. Stages run strictly in dependency order; writes within a stage
// fan out concurrently. Safe to run more than once: users, customers and
// revenue upsert by their unique keys, invoices skip duplicates.
type Pipeline struct {
	db        *gorm.DB
	users     *repository.UserRepository
	customers *repository.CustomerRepository
	invoices  *repository.InvoiceRepository
	revenue   *repository.RevenueRepository
	data      fixtures.Dataset
	log       *zap.Logger
}

func New(db *gorm.DB, data fixtures.Dataset, log *zap.Logger) *Pipeline {
	return &Pipeline{
		db:        db,
		users:     repository.NewUserRepository(db),
		customers: repository.NewCustomerRepository(db),
		invoices:  repository.NewInvoiceRepository(db),
		revenue:   repository.NewRevenueRepository(db),
		data:      data,
		log:       log,
	}
}

// Run executes the four stages in order and records a SeedRun audit row on
// every outcome. Any stage failure aborts the remaining stages.
func (p *Pipeline) Run(ctx context.Context) (Counts, error) {
	started := time.Now().UTC()

	counts, err := p.run(ctx)
	p.recordRun(ctx, started, counts, err)
	if err != nil {
		p.log.Error("seeding failed", zap.Error(err))
		return Counts{}, err
	}

	p.log.Info("database seeded",
		zap.Int("users", counts.Users),
		zap.Int("customers", counts.Customers),
		zap.Int("invoices", counts.Invoices),
		zap.Int("revenue", counts.Revenue),
	)
	return counts, nil
}

func (p *Pipeline) run(ctx context.Context) (Counts, error) {
	var counts Counts
	var err error

	// Stage order is a hard dependency chain: invoices resolve customer
	// references through a committed read of the customers stage.
	if counts.Users, err = p.seedUsers(ctx); err != nil {
		return counts, fmt.Errorf("failed to seed users: %w", err)
	}
	if counts.Customers, err = p.seedCustomers(ctx); err != nil {
		return counts, fmt.Errorf("failed to seed customers: %w", err)
	}
	if counts.Invoices, err = p.seedInvoices(ctx); err != nil {
		return counts, fmt.Errorf("failed to seed invoices: %w", err)
	}
	if counts.Revenue, err = p.seedRevenue(ctx); err != nil {
		return counts, fmt.Errorf("failed to seed revenue: %w", err)
	}

	return counts, nil
}

// seedUsers dedupes the fixture list by email (fixture data may contain
// duplicates), hashes each password and upserts by email.
func (p *Pipeline) seedUsers(ctx context.Context) (int, error) {
	seen := make(map[string]struct{}, len(p.data.Users))
	var unique []fixtures.User
	for _, u := range p.data.Users {
		key := strings.ToLower(u.Email)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, u)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, u := range unique {
		g.Go(func() error {
			hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), hashCost)
			if err != nil {
				return fmt.Errorf("user %s: %w", u.Email, err)
			}
			user := models.User{
				ID:       uuid.New(),
				Name:     u.Name,
				Email:    strings.ToLower(u.Email),
				Password: string(hashed),
			}
			return p.users.UpsertByEmail(ctx, &user)
		})
	}
	return len(unique), g.Wait()
}

func (p *Pipeline) seedCustomers(ctx context.Context) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range p.data.Customers {
		g.Go(func() error {
			customer := models.Customer{
				ID:       uuid.New(),
				Name:     c.Name,
				Email:    c.Email,
				ImageURL: c.ImageURL,
			}
			return p.customers.UpsertByEmail(ctx, &customer)
		})
	}
	return len(p.data.Customers), g.Wait()
}

// seedInvoices resolves each fixture invoice's synthetic customer id to the
// store-assigned one by joining on email, then inserts with skip-duplicate
// semantics. Fixture ids never reach the store: upserted customers carry
// generated ids, so the email join is the only resolution that holds.
func (p *Pipeline) seedInvoices(ctx context.Context) (int, error) {
	stored, err := p.customers.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	idByEmail := make(map[string]uuid.UUID, len(stored))
	for _, c := range stored {
		idByEmail[c.Email] = c.ID
	}
	emailByFixtureID := make(map[string]string, len(p.data.Customers))
	for _, c := range p.data.Customers {
		emailByFixtureID[c.ID] = c.Email
	}

	// Resolve every reference before any write so a dangling fixture id
	// fails the stage loudly instead of seeding a partial set.
	resolved := make([]models.Invoice, 0, len(p.data.Invoices))
	for _, inv := range p.data.Invoices {
		email, ok := emailByFixtureID[inv.CustomerID]
		if !ok {
			return 0, fmt.Errorf("no matching customer found for customer_id: %s", inv.CustomerID)
		}
		customerID, ok := idByEmail[email]
		if !ok {
			return 0, fmt.Errorf("no matching customer found for customer_id: %s", inv.CustomerID)
		}
		date, err := time.Parse("2006-01-02", inv.Date)
		if err != nil {
			return 0, fmt.Errorf("invoice for customer_id %s: %w", inv.CustomerID, err)
		}
		resolved = append(resolved, models.Invoice{
			ID:         uuid.New(),
			CustomerID: customerID,
			Amount:     inv.Amount,
			Status:     inv.Status,
			Date:       date,
		})
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, inv := range resolved {
		g.Go(func() error {
			exists, err := p.invoices.ExistsDuplicate(ctx, inv.CustomerID, inv.Amount, inv.Date)
			if err != nil {
				return err
			}
			if exists {
				return nil
			}
			return p.invoices.Create(ctx, &inv)
		})
	}
	return len(resolved), g.Wait()
}

func (p *Pipeline) seedRevenue(ctx context.Context) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	for _, rev := range p.data.Revenue {
		g.Go(func() error {
			return p.revenue.UpsertByMonth(ctx, &models.Revenue{
				Month:   rev.Month,
				Revenue: rev.Revenue,
			})
		})
	}
	return len(p.data.Revenue), g.Wait()
}

// recordRun writes the audit row for this invocation. Best effort: a failed
// audit write is logged, never surfaced over the run's own outcome.
func (p *Pipeline) recordRun(ctx context.Context, started time.Time, counts Counts, runErr error) {
	status := "completed"
	errMsg := ""
	if runErr != nil {
		status = "failed"
		errMsg = runErr.Error()
	}

	payload, err := json.Marshal(counts)
	if err != nil {
		p.log.Warn("marshal seed counts", zap.Error(err))
		payload = []byte("{}")
	}

	completed := time.Now().UTC()
	run := models.SeedRun{
		ID:          uuid.New(),
		Status:      status,
		Counts:      datatypes.JSON(payload),
		Error:       errMsg,
		StartedAt:   started,
		CompletedAt: &completed,
	}
	if err := p.db.WithContext(ctx).Create(&run).Error; err != nil {
		p.log.Warn("record seed run", zap.Error(err))
	}
}
