package services

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobrancapix-backend/billing"
	"cobrancapix-backend/models"
	"cobrancapix-backend/pix"
)

type sentMessage struct {
	kind    string // text, media
	phone   string
	content string // body or media URL
}

// fakeSender records every leg and can be told to fail a given call.
type fakeSender struct {
	calls  []sentMessage
	failAt int // 1-based index of the call that fails; 0 disables
}

func (f *fakeSender) send(kind, phone, content string) error {
	f.calls = append(f.calls, sentMessage{kind: kind, phone: phone, content: content})
	if f.failAt != 0 && len(f.calls) == f.failAt {
		return errors.New("gateway unavailable")
	}
	return nil
}

func (f *fakeSender) SendText(phone, text string) error {
	return f.send("text", phone, text)
}

func (f *fakeSender) SendMedia(phone, mediaURL, caption string) error {
	return f.send("media", phone, mediaURL)
}

func testClient() models.Client {
	return models.Client{
		Name:       "Ana",
		WhatsApp:   "5582999998888",
		Service:    "Hospedagem",
		Value:      decimal.RequireFromString("150.00"),
		BillingDay: 20,
	}
}

func testSettings() models.Settings {
	return models.Settings{
		DaysBeforeDue:   5,
		MessageTemplate: "Olá {nome}, {servico} de R$ {valor} vence em {dias} dias. {empresa}",
		PixName:         "Empresa",
		PixCity:         "SAO PAULO",
		PixKey:          "empresa@pix.com",
		PixTxid:         "TX123",
	}
}

func TestDispatchReminderSendsLegsInOrder(t *testing.T) {
	sender := &fakeSender{}
	today := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	message, err := dispatchReminder(sender, "https://qr.example/render?text=", testClient(), testSettings(), today)
	require.NoError(t, err)

	assert.Equal(t, "Olá Ana, Hospedagem de R$ 150.00 vence em 5 dias. Empresa", message)

	require.Len(t, sender.calls, 3)
	assert.Equal(t, "text", sender.calls[0].kind)
	assert.Equal(t, message, sender.calls[0].content)

	payload, err := pix.Encode(ChargeFor(testSettings(), testClient()))
	require.NoError(t, err)

	assert.Equal(t, "text", sender.calls[1].kind)
	assert.Contains(t, sender.calls[1].content, payload)

	assert.Equal(t, "media", sender.calls[2].kind)
	assert.Equal(t, "https://qr.example/render?text="+url.QueryEscape(payload), sender.calls[2].content)

	for _, call := range sender.calls {
		assert.Equal(t, "5582999998888", call.phone)
	}
}

func TestDispatchReminderStopsAtFirstFailedLeg(t *testing.T) {
	for failAt := 1; failAt <= 3; failAt++ {
		sender := &fakeSender{failAt: failAt}
		today := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

		_, err := dispatchReminder(sender, "https://qr.example/?text=", testClient(), testSettings(), today)

		assert.Error(t, err, "fail at leg %d", failAt)
		assert.Len(t, sender.calls, failAt, "no leg after the failed one")
	}
}

func TestDispatchReminderRejectsBrokenMerchantIdentity(t *testing.T) {
	sender := &fakeSender{}
	cfg := testSettings()
	cfg.PixKey = ""

	_, err := dispatchReminder(sender, "", testClient(), cfg, time.Now())

	assert.Error(t, err)
	// Configuration errors are caught before any message goes out.
	assert.Empty(t, sender.calls)
}

func TestDispatchReminderDeterministicAcrossRetries(t *testing.T) {
	today := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	first := &fakeSender{}
	_, err := dispatchReminder(first, "https://qr/?text=", testClient(), testSettings(), today)
	require.NoError(t, err)

	second := &fakeSender{}
	_, err = dispatchReminder(second, "https://qr/?text=", testClient(), testSettings(), today)
	require.NoError(t, err)

	// A retry presents the customer with the identical code and QR.
	assert.Equal(t, first.calls, second.calls)
}

func TestEndToEndDueScenario(t *testing.T) {
	// spec: Ana, Hospedagem, 150.00, billing day 20, lead 5, today 2024-06-15.
	client := testClient()
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	require.True(t, billing.IsDue(client, 5, today))

	payload, err := pix.Encode(ChargeFor(testSettings(), client))
	require.NoError(t, err)

	assert.Equal(t,
		"00020126370014br.gov.bcb.pix0115empresa@pix.com5204000053039865406150.005802BR5907Empresa6009SAO PAULO62090505TX12363049460",
		payload)
	assert.Equal(t, pix.ChecksumHex(payload[:len(payload)-4]), payload[len(payload)-4:])
}

func TestChargeForUsesClientAmountAndStaticTxid(t *testing.T) {
	spec := ChargeFor(testSettings(), testClient())

	assert.Equal(t, "Empresa", spec.MerchantName)
	assert.Equal(t, "SAO PAULO", spec.MerchantCity)
	assert.Equal(t, "empresa@pix.com", spec.Key)
	assert.Equal(t, "TX123", spec.TxID)
	assert.True(t, spec.Amount.Equal(decimal.RequireFromString("150.00")))
}
