// controllers/settings.go
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

// UpdateSettingsInput defines the expected JSON structure
type UpdateSettingsInput struct {
	AutomaticSendingEnabled *bool   `json:"automaticSendingEnabled"`
	DaysBeforeDue           *int    `json:"daysBeforeDue"`
	SendTime                *string `json:"sendTime"`
	MessageTemplate         *string `json:"messageTemplate"`
	PixName                 *string `json:"pixName"`
	PixCity                 *string `json:"pixCity"`
	PixKey                  *string `json:"pixKey"`
	PixKeyType              *string `json:"pixKeyType"`
	PixTxid                 *string `json:"pixTxid"`
}

// defaultTemplate matches the template the registration UI ships with.
const defaultTemplate = "Olá {nome}! 👋\n\nEsperamos que esteja bem!\n\n📋 *Detalhes do Serviço*\n☑️ Serviço: {servico}\n💰 Valor: R$ {valor}\n📅 Vencimento: em {dias} dias\n\n💳 *Opções de Pagamento*\nPara sua comodidade, disponibilizamos o pagamento via PIX."

// GetSettings returns the configuration row, creating defaults on first read
func GetSettings(c *gin.Context) {
	var settings models.Settings
	if err := config.DB.First(&settings).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		settings = models.Settings{
			ID:              uuid.New(),
			DaysBeforeDue:   1,
			SendTime:        "09:00",
			MessageTemplate: defaultTemplate,
		}
		if err := config.DB.Create(&settings).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create settings")
			return
		}
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings updates the reminder configuration and PIX merchant identity
func UpdateSettings(c *gin.Context) {
	var settings models.Settings
	if err := config.DB.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			settings = models.Settings{ID: uuid.New(), DaysBeforeDue: 1, SendTime: "09:00"}
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.AutomaticSendingEnabled != nil {
		settings.AutomaticSendingEnabled = *input.AutomaticSendingEnabled
	}
	if input.DaysBeforeDue != nil {
		if *input.DaysBeforeDue < 0 || *input.DaysBeforeDue > 31 {
			utils.RespondWithError(c, http.StatusBadRequest, "Days before due must be between 0 and 31")
			return
		}
		settings.DaysBeforeDue = *input.DaysBeforeDue
	}
	if input.SendTime != nil {
		if !utils.ValidateSendTime(*input.SendTime) {
			utils.RespondWithError(c, http.StatusBadRequest, "Send time must be HH:MM")
			return
		}
		settings.SendTime = *input.SendTime
	}
	if input.MessageTemplate != nil {
		settings.MessageTemplate = *input.MessageTemplate
	}
	if input.PixName != nil {
		settings.PixName = *input.PixName
	}
	if input.PixCity != nil {
		settings.PixCity = *input.PixCity
	}
	if input.PixKey != nil {
		settings.PixKey = *input.PixKey
	}
	if input.PixKeyType != nil {
		settings.PixKeyType = *input.PixKeyType
	}
	if input.PixTxid != nil {
		settings.PixTxid = *input.PixTxid
	}

	if err := config.DB.Save(&settings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}
