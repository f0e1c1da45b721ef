package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TemplateData carries the values substituted into the message template.
type TemplateData struct {
	Name    string
	Service string
	Amount  decimal.Decimal
	Days    int // days until the billing occurrence
	Company string
}

// RenderTemplate substitutes the known placeholder tokens, every occurrence
// of each. Unknown tokens are left verbatim; a typo in the template shows up
// in the message instead of failing the send.
func RenderTemplate(template string, data TemplateData) string {
	return strings.NewReplacer(
		"{nome}", data.Name,
		"{servico}", data.Service,
		"{valor}", data.Amount.StringFixed(2),
		"{dias}", fmt.Sprintf("%d", data.Days),
		"{empresa}", data.Company,
	).Replace(template)
}

// FallbackMessage is used when no template is configured.
func FallbackMessage(name string, amount decimal.Decimal, occurrence time.Time) string {
	return fmt.Sprintf(
		"Olá %s! Este é um lembrete da sua mensalidade no valor de R$ %s com vencimento em %s. Por favor, entre em contato para mais informações.",
		name, amount.StringFixed(2), occurrence.Format("02/01/2006"),
	)
}

// ComposeReminder renders the configured template, or the fallback sentence
// when the template is empty.
func ComposeReminder(template string, data TemplateData, occurrence time.Time) string {
	if strings.TrimSpace(template) == "" {
		return FallbackMessage(data.Name, data.Amount, occurrence)
	}
	return RenderTemplate(template, data)
}
