package controllers

import (
	"errors"
	"net/http"

	"cobrancapix-backend/config"
	"cobrancapix-backend/models"
	"cobrancapix-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateClientInput defines the expected JSON structure for registering a client
type CreateClientInput struct {
	Name       string `json:"name" binding:"required"`
	WhatsApp   string `json:"whatsapp" binding:"required"`
	Service    string `json:"service" binding:"required"`
	Value      string `json:"value" binding:"required"` // free-form, normalized to decimal
	BillingDay int    `json:"billingDay" binding:"required"`
	Recurrence string `json:"recurrence"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	Name       *string `json:"name"`
	WhatsApp   *string `json:"whatsapp"`
	Service    *string `json:"service"`
	Value      *string `json:"value"`
	BillingDay *int    `json:"billingDay"`
	Recurrence *string `json:"recurrence"`
	IsActive   *bool   `json:"isActive"`
}

// CreateClient registers a new billing client
func CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.WhatsApp) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if !utils.ValidateBillingDay(input.BillingDay) {
		utils.RespondWithError(c, http.StatusBadRequest, "Billing day must be between 1 and 31")
		return
	}
	value, err := utils.ParseAmount(input.Value)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid value: "+err.Error())
		return
	}
	recurrence := input.Recurrence
	if recurrence == "" {
		recurrence = models.RecurrenceMonthly
	}
	if !models.ValidRecurrence(recurrence) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid recurrence")
		return
	}

	phone := utils.NormalizePhone(input.WhatsApp)

	// Check if phone already exists
	var existingClient models.Client
	if err := config.DB.Where("whats_app = ?", phone).First(&existingClient).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Client with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	client := models.Client{
		ID:         uuid.New(),
		Name:       input.Name,
		WhatsApp:   phone,
		Service:    input.Service,
		Value:      value,
		BillingDay: input.BillingDay,
		Recurrence: recurrence,
		IsActive:   true,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves all registered clients
func GetClients(c *gin.Context) {
	var clients []models.Client
	if err := config.DB.Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient retrieves a specific client by ID
func GetClient(c *gin.Context) {
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

	c.JSON(http.StatusOK, client)
}

// UpdateClient updates an existing client
func UpdateClient(c *gin.Context) {
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

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.WhatsApp != nil {
		if !utils.ValidatePhone(*input.WhatsApp) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		client.WhatsApp = utils.NormalizePhone(*input.WhatsApp)
	}
	if input.Service != nil {
		client.Service = *input.Service
	}
	if input.Value != nil {
		value, err := utils.ParseAmount(*input.Value)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid value: "+err.Error())
			return
		}
		client.Value = value
	}
	if input.BillingDay != nil {
		if !utils.ValidateBillingDay(*input.BillingDay) {
			utils.RespondWithError(c, http.StatusBadRequest, "Billing day must be between 1 and 31")
			return
		}
		client.BillingDay = *input.BillingDay
	}
	if input.Recurrence != nil {
		if !models.ValidRecurrence(*input.Recurrence) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid recurrence")
			return
		}
		client.Recurrence = *input.Recurrence
	}
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client by ID
func DeleteClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	if err := config.DB.Delete(&models.Client{}, "id = ?", clientID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
