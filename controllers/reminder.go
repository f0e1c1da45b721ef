// controllers/reminder.go
package controllers

import (
	"errors"
	"net/http"

	"cobrancapix-backend/config"
	"cobrancapix-backend/models"
	"cobrancapix-backend/pix"
	"cobrancapix-backend/services"
	"cobrancapix-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SendClientReminder dispatches a reminder for one client on demand, outside
// the daily sweep. The billing marker is only advanced on full success.
func SendClientReminder(svc *services.ReminderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID")
			return
		}

		var client models.Client
		if err := config.DB.First(&client, "id = ?", clientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Client not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}

		if err := svc.SendNow(&client); err != nil {
			utils.RespondWithError(c, http.StatusBadGateway, "Failed to send reminder: "+err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Reminder sent", "client": client})
	}
}

// GetClientPix returns the BRCode payload for a client's charge without
// sending anything; the registration UI uses it as a preview.
func GetClientPix(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var settings models.Settings
	if err := config.DB.First(&settings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Settings not configured")
		return
	}

	payload, err := pix.Encode(services.ChargeFor(settings, client))
	if err != nil {
		utils.RespondWithError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"pixCode": payload})
}

// GetReminderLogs lists recent dispatch attempts, newest first
func GetReminderLogs(c *gin.Context) {
	var logs []models.ReminderLog
	if err := config.DB.Order("sent_at DESC").Limit(100).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminder logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
