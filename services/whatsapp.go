// services/whatsapp.go
package services

import (
	"fmt"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MessageSender is the messaging gateway the orchestrator dispatches through.
// Success or failure is all the core needs back.
type MessageSender interface {
	SendText(phone, text string) error
	SendMedia(phone, mediaURL, caption string) error
}

// TwilioSender sends WhatsApp messages through the Twilio API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender() *TwilioSender {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
	}
}

// whatsappAddr turns a digits-only stored number into Twilio's WhatsApp form.
func whatsappAddr(phone string) string {
	return "whatsapp:+" + phone
}

func (s *TwilioSender) SendText(phone, text string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(whatsappAddr(phone))
	params.SetFrom("whatsapp:" + s.from)
	params.SetBody(text)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send text: %w", err)
	}
	if resp.Sid == nil {
		return fmt.Errorf("twilio send text: no SID returned")
	}
	return nil
}

func (s *TwilioSender) SendMedia(phone, mediaURL, caption string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(whatsappAddr(phone))
	params.SetFrom("whatsapp:" + s.from)
	params.SetBody(caption)
	params.SetMediaUrl([]string{mediaURL})

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send media: %w", err)
	}
	if resp.Sid == nil {
		return fmt.Errorf("twilio send media: no SID returned")
	}
	return nil
}
