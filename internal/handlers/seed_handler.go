package handler

import (
	"context"
	"net/http"

	"invoice-dashboard-backend/internal/fixtures"
	"invoice-dashboard-backend/internal/metrics"
	"invoice-dashboard-backend/internal/services/seed"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StoreOpener acquires a store handle scoped to one pipeline run. The
// returned release func runs on every exit path.
type StoreOpener func(ctx context.Context) (*gorm.DB, func(), error)

type SeedHandler struct {
	open StoreOpener
	data fixtures.Dataset
	log  *zap.Logger
}

func NewSeedHandler(open StoreOpener, data fixtures.Dataset, log *zap.Logger) *SeedHandler {
	return &SeedHandler{open: open, data: data, log: log}
}

// Run triggers the seeding pipeline once.
func (h *SeedHandler) Run(c *gin.Context) {
	db, release, err := h.open(c.Request.Context())
	if err != nil {
		metrics.SeedRuns.WithLabelValues("failed").Inc()
		h.log.Error("open seed store", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to connect to database"})
		return
	}
	defer release()

	counts, err := seed.New(db, h.data, h.log).Run(c.Request.Context())
	if err != nil {
		metrics.SeedRuns.WithLabelValues("failed").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.SeedRuns.WithLabelValues("completed").Inc()
	c.JSON(http.StatusOK, gin.H{
		"message": "Database seeded successfully",
		"counts":  counts,
	})
}
