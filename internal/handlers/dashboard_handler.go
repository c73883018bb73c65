package handler

import (
	"net/http"

	"invoice-dashboard-backend/internal/services/dashboard"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service *dashboard.Service
}

func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) Revenue(c *gin.Context) {
	revenue, err := h.service.Revenue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(revenue))
	for _, rev := range revenue {
		out = append(out, gin.H{"month": rev.Month, "revenue": rev.Revenue})
	}
	c.JSON(http.StatusOK, out)
}

func (h *DashboardHandler) LatestInvoices(c *gin.Context) {
	latest, err := h.service.LatestInvoices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, latest)
}

func (h *DashboardHandler) Cards(c *gin.Context) {
	cards, err := h.service.CardData(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *DashboardHandler) Customers(c *gin.Context) {
	customers, err := h.service.Customers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *DashboardHandler) FilteredCustomers(c *gin.Context) {
	rows, err := h.service.FilteredCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
