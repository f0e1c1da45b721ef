package controllers

import (
	"net/http"
	"time"

	"cobrancapix-backend/config"
	"cobrancapix-backend/models"
	"cobrancapix-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DashboardOverview struct {
	ActiveClients   int64  `json:"activeClients"`
	MonthlyRevenue  string `json:"monthlyRevenue"`
	PendingPayments int64  `json:"pendingPayments"`
}

// GetDashboardOverview returns the three headline numbers: active clients,
// the sum of their monthly values, and how many still have an open cycle
// (no reminder confirmed this calendar month).
func GetDashboardOverview(c *gin.Context) {
	var activeClients int64
	if err := config.DB.Model(&models.Client{}).
		Where("is_active = ?", true).
		Count(&activeClients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var clients []models.Client
	if err := config.DB.Find(&clients, "is_active = ?", true).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	now := time.Now()
	revenue := decimal.Zero
	var pending int64
	for _, client := range clients {
		revenue = revenue.Add(client.Value)
		if client.LastBillingDate == nil || !utils.SameMonth(*client.LastBillingDate, now) {
			pending++
		}
	}

	c.JSON(http.StatusOK, DashboardOverview{
		ActiveClients:   activeClients,
		MonthlyRevenue:  revenue.StringFixed(2),
		PendingPayments: pending,
	})
}
