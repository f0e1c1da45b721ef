package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderTemplateReplacesAllKnownTokens(t *testing.T) {
	template := "Olá {nome}, o serviço {servico} de R$ {valor} vence em {dias} dias. Att, {empresa}. {unknown}"

	got := RenderTemplate(template, TemplateData{
		Name:    "Ana",
		Service: "Hospedagem",
		Amount:  decimal.RequireFromString("150.00"),
		Days:    5,
		Company: "Empresa",
	})

	assert.Equal(t, "Olá Ana, o serviço Hospedagem de R$ 150.00 vence em 5 dias. Att, Empresa. {unknown}", got)
}

func TestRenderTemplateRepeatedTokens(t *testing.T) {
	got := RenderTemplate("{nome} {nome} {nome}", TemplateData{Name: "Ana"})
	assert.Equal(t, "Ana Ana Ana", got)
}

func TestRenderTemplateFormatsAmountTwoDecimals(t *testing.T) {
	got := RenderTemplate("{valor}", TemplateData{Amount: decimal.NewFromInt(99)})
	assert.Equal(t, "99.00", got)
}

func TestComposeReminderFallsBackWithoutTemplate(t *testing.T) {
	occurrence := time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC)
	data := TemplateData{Name: "Ana", Amount: decimal.RequireFromString("150.00")}

	got := ComposeReminder("", data, occurrence)

	assert.Contains(t, got, "Ana")
	assert.Contains(t, got, "R$ 150.00")
	assert.Contains(t, got, "20/06/2024")

	// Whitespace-only templates fall back the same way.
	assert.Equal(t, got, ComposeReminder("   \n", data, occurrence))
}

func TestComposeReminderUsesTemplateWhenPresent(t *testing.T) {
	got := ComposeReminder("Oi {nome}", TemplateData{Name: "Ana"}, time.Now())
	assert.Equal(t, "Oi Ana", got)
}
