package handler

import (
	"net/http"

	"invoice-dashboard-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// debugAmountCents is the fixed filter of the debug listing.
const debugAmountCents = 666

type QueryHandler struct {
	invoices *repository.InvoiceRepository
	log      *zap.Logger
}

func NewQueryHandler(invoices *repository.InvoiceRepository, log *zap.Logger) *QueryHandler {
	return &QueryHandler{invoices: invoices, log: log}
}

// List returns every invoice matching the fixed amount, projected to
// {amount, customer:{name}}.
func (h *QueryHandler) List(c *gin.Context) {
	invoices, err := h.invoices.FindByAmount(c.Request.Context(), debugAmountCents)
	if err != nil {
		h.log.Error("query invoices", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch invoices"})
		return
	}

	out := make([]gin.H, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, gin.H{
			"amount":   inv.Amount,
			"customer": gin.H{"name": inv.Customer.Name},
		})
	}
	c.JSON(http.StatusOK, out)
}
