// services/reminder_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"cobrancapix-backend/billing"
	"cobrancapix-backend/models"
	"cobrancapix-backend/pix"
	"cobrancapix-backend/utils"
)

const (
	TriggerAutomatic = "automatic"
	TriggerManual    = "manual"

	defaultQRRenderURL = "https://quickchart.io/qr?size=300&text="
)

type ReminderService struct {
	db     *gorm.DB
	sender MessageSender
	qrURL  string
}

func NewReminderService(db *gorm.DB, sender MessageSender) *ReminderService {
	qrURL := os.Getenv("QR_RENDER_URL")
	if qrURL == "" {
		qrURL = defaultQRRenderURL
	}
	return &ReminderService{db: db, sender: sender, qrURL: qrURL}
}

// StartScheduler registers the daily sweep at the configured send time.
// A single cron entry means a single-writer sweep: per-client sends are
// serialized and the LastBillingDate compare-and-set cannot race itself.
func (s *ReminderService) StartScheduler() *cron.Cron {
	cfg, err := s.LoadSettings()
	sendTime := "09:00"
	if err == nil && utils.ValidateSendTime(cfg.SendTime) {
		sendTime = cfg.SendTime
	}

	parts := strings.SplitN(sendTime, ":", 2)
	spec := fmt.Sprintf("%s %s * * *", parts[1], parts[0])

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		s.SendDailyReminders(context.Background())
	}); err != nil {
		log.Printf("Failed to register reminder sweep: %v", err)
		return c
	}

	c.Start()
	log.Printf("Reminder scheduler started (daily at %s)", sendTime)
	return c
}

// LoadSettings returns the configuration row, or defaults when none exists.
func (s *ReminderService) LoadSettings() (models.Settings, error) {
	var cfg models.Settings
	if err := s.db.First(&cfg).Error; err != nil {
		return models.Settings{DaysBeforeDue: 1, SendTime: "09:00"}, err
	}
	return cfg, nil
}

// SendDailyReminders runs one sweep over the full client list. Clients are
// processed independently; one client's gateway failure never aborts the
// sweep. A canceled context stops before the next client's dispatch starts.
func (s *ReminderService) SendDailyReminders(ctx context.Context) {
	log.Println("Starting daily reminder processing...")

	cfg, err := s.LoadSettings()
	if err != nil {
		log.Printf("Failed to load reminder settings: %v", err)
		return
	}
	if !cfg.AutomaticSendingEnabled {
		log.Println("Automatic sending disabled, skipping sweep")
		return
	}

	var clients []models.Client
	if err := s.db.Find(&clients, "is_active = ?", true).Error; err != nil {
		log.Printf("Failed to fetch clients: %v", err)
		return
	}

	today := time.Now()
	for i := range clients {
		select {
		case <-ctx.Done():
			log.Println("Reminder sweep stopped")
			return
		default:
		}

		client := &clients[i]
		if !billing.IsDue(*client, cfg.DaysBeforeDue, today) {
			continue
		}
		if err := s.sendAndRecord(client, cfg, today, TriggerAutomatic); err != nil {
			log.Printf("Client %s: reminder failed: %v", client.ID, err)
		}
	}

	log.Println("Daily reminder processing completed")
}

// SendNow dispatches a reminder for a single client outside the due check
// (the manual send action). The same confirmation rule applies: the billing
// marker only advances after every leg succeeded.
func (s *ReminderService) SendNow(client *models.Client) error {
	cfg, err := s.LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	return s.sendAndRecord(client, cfg, time.Now(), TriggerManual)
}

// ChargeFor derives the immutable charge spec for a client from the merchant
// identity. The txid is the configured static reference, so a retry encodes
// the identical payload.
func ChargeFor(cfg models.Settings, client models.Client) pix.ChargeSpec {
	return pix.ChargeSpec{
		MerchantName: cfg.PixName,
		MerchantCity: cfg.PixCity,
		Key:          cfg.PixKey,
		TxID:         cfg.PixTxid,
		Amount:       client.Value,
	}
}

// dispatchReminder sends the three legs for one client, in order: free text,
// PIX copy-paste code, QR image rendered from the same payload. The first
// failing leg aborts the rest. Returns the rendered reminder text.
func dispatchReminder(sender MessageSender, qrURL string, client models.Client, cfg models.Settings, today time.Time) (string, error) {
	occurrence := billing.NextOccurrence(client.BillingDay, today)
	message := billing.ComposeReminder(cfg.MessageTemplate, billing.TemplateData{
		Name:    client.Name,
		Service: client.Service,
		Amount:  client.Value,
		Days:    billing.DaysUntilDue(client.BillingDay, today),
		Company: cfg.PixName,
	}, occurrence)

	payload, err := pix.Encode(ChargeFor(cfg, client))
	if err != nil {
		return message, err
	}

	if err := sender.SendText(client.WhatsApp, message); err != nil {
		return message, err
	}

	codeMessage := "*Código PIX para cópia:*\n```" + payload + "```\n_Cole este código no seu aplicativo de pagamento para efetuar o PIX._"
	if err := sender.SendText(client.WhatsApp, codeMessage); err != nil {
		return message, err
	}

	caption := "📱 *QR Code para pagamento via PIX*\n_Escaneie este QR Code com seu aplicativo de pagamento._"
	if err := sender.SendMedia(client.WhatsApp, qrURL+url.QueryEscape(payload), caption); err != nil {
		return message, err
	}

	return message, nil
}

// sendAndRecord dispatches and, only on full success, advances
// LastBillingDate so the client drops out of this month's cycle. A partial
// failure records a failed log entry and leaves the client eligible for
// retry on the next sweep.
func (s *ReminderService) sendAndRecord(client *models.Client, cfg models.Settings, today time.Time, trigger string) error {
	message, sendErr := dispatchReminder(s.sender, s.qrURL, *client, cfg, today)

	entry := models.ReminderLog{
		ClientID: client.ID,
		Message:  message,
		Status:   "sent",
		Channel:  "whatsapp",
		Trigger:  trigger,
		SentAt:   today,
	}

	if sendErr != nil {
		entry.Status = "failed"
		entry.ErrorMessage = sendErr.Error()
		if err := s.db.Create(&entry).Error; err != nil {
			log.Printf("Failed to log reminder for client %s: %v", client.ID, err)
		}
		return sendErr
	}

	billed := utils.BeginningOfDay(today)
	client.LastBillingDate = &billed
	if err := s.db.Model(client).Update("last_billing_date", billed).Error; err != nil {
		// The messages went out; surface the store failure rather than
		// pretend the cycle is still open.
		return fmt.Errorf("update last billing date: %w", err)
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log reminder for client %s: %v", client.ID, err)
	}
	return nil
}
