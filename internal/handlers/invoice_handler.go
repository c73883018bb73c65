package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"invoice-dashboard-backend/internal/metrics"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/dashboard"
	"invoice-dashboard-backend/internal/services/invoice"
	"invoice-dashboard-backend/internal/validation"
	"invoice-dashboard-backend/internal/viewcache"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const listCacheTTL = time.Minute

// InvoiceHandler owns the invoice mutation actions and the listing reads.
// Redirects and view-cache invalidation happen here, after the service
// reports success, never inside the service.
type InvoiceHandler struct {
	service   *invoice.Service
	dashboard *dashboard.Service
	cache     viewcache.Cache
	log       *zap.Logger
}

func NewInvoiceHandler(service *invoice.Service, dash *dashboard.Service, cache viewcache.Cache, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{service: service, dashboard: dash, cache: cache, log: log}
}

func formInput(c *gin.Context) validation.InvoiceInput {
	return validation.InvoiceInput{
		CustomerID: c.PostForm("customerId"),
		Amount:     c.PostForm("amount"),
		Status:     c.PostForm("status"),
	}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	_, formErrs, err := h.service.Create(c.Request.Context(), formInput(c))
	if formErrs != nil {
		metrics.InvoiceMutations.WithLabelValues("create", "invalid").Inc()
		c.JSON(http.StatusBadRequest, formErrs)
		return
	}
	if err != nil {
		metrics.InvoiceMutations.WithLabelValues("create", "error").Inc()
		if errors.Is(err, repository.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create invoice"})
		return
	}

	metrics.InvoiceMutations.WithLabelValues("create", "ok").Inc()
	h.cache.Invalidate(c.Request.Context(), viewcache.InvoiceListKey)
	c.Redirect(http.StatusSeeOther, "/dashboard/invoices")
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	formErrs, err := h.service.Update(c.Request.Context(), id, formInput(c))
	if formErrs != nil {
		metrics.InvoiceMutations.WithLabelValues("update", "invalid").Inc()
		c.JSON(http.StatusBadRequest, formErrs)
		return
	}
	if err != nil {
		metrics.InvoiceMutations.WithLabelValues("update", "error").Inc()
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		case errors.Is(err, repository.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update invoice"})
		}
		return
	}

	metrics.InvoiceMutations.WithLabelValues("update", "ok").Inc()
	h.cache.Invalidate(c.Request.Context(), viewcache.InvoiceListKey)
	c.Redirect(http.StatusSeeOther, "/dashboard/invoices")
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		metrics.InvoiceMutations.WithLabelValues("delete", "error").Inc()
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete invoice"})
		return
	}

	metrics.InvoiceMutations.WithLabelValues("delete", "ok").Inc()
	h.cache.Invalidate(c.Request.Context(), viewcache.InvoiceListKey)
	c.Status(http.StatusNoContent)
}

// List serves the filtered, paginated invoice table. The default view
// (no query, first page) is served from the view cache until a mutation
// invalidates it.
func (h *InvoiceHandler) List(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	cacheable := query == "" && page == 1
	if cacheable {
		if cached, ok := h.cache.Get(c.Request.Context(), viewcache.InvoiceListKey); ok {
			metrics.ViewCacheHits.WithLabelValues("hit").Inc()
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
		metrics.ViewCacheHits.WithLabelValues("miss").Inc()
	}

	rows, err := h.dashboard.FilteredInvoices(c.Request.Context(), query, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch invoices"})
		return
	}
	if cacheable {
		h.cache.Set(c.Request.Context(), viewcache.InvoiceListKey, payload, listCacheTTL)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

func (h *InvoiceHandler) Pages(c *gin.Context) {
	totalPages, err := h.dashboard.InvoicesPages(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalPages": totalPages})
}

func (h *InvoiceHandler) GetByID(c *gin.Context) {
	detail, err := h.dashboard.InvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}
