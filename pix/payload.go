package pix

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BRCode field identifiers, in the order they are serialized.
const (
	tagPayloadFormat  = "00"
	tagMerchantInfo   = "26"
	tagCategoryCode   = "52"
	tagCurrency       = "53"
	tagAmount         = "54"
	tagCountryCode    = "58"
	tagMerchantName   = "59"
	tagMerchantCity   = "60"
	tagAdditionalData = "62"
	tagCRC            = "63"

	// Sub-fields of the merchant account information composite.
	subTagGUI = "00"
	subTagKey = "01"

	// Sub-field of the additional data composite.
	subTagTxID = "05"

	payloadFormatIndicator = "01"
	pixGUI                 = "br.gov.bcb.pix"
	categoryCode           = "0000"
	currencyBRL            = "986" // ISO 4217 numeric
	countryBR              = "BR"
)

// BRCode limits for the free-text fields.
const (
	maxMerchantName = 25
	maxMerchantCity = 15
	maxTxID         = 25
	maxKey          = 77
)

// ChargeSpec identifies a static PIX charge. Encoding the same spec always
// yields the same payload, so a retried dispatch presents the customer with
// one code, not two.
type ChargeSpec struct {
	MerchantName string
	MerchantCity string
	Key          string
	TxID         string
	Amount       decimal.Decimal
}

// Validate fails fast on a spec that would produce a payload no wallet
// accepts. Called by Encode; exposed so the settings endpoint can reject a
// broken merchant identity before any send.
func (s ChargeSpec) Validate() error {
	switch {
	case s.Key == "":
		return fmt.Errorf("pix: charge spec missing key")
	case s.MerchantName == "":
		return fmt.Errorf("pix: charge spec missing merchant name")
	case s.MerchantCity == "":
		return fmt.Errorf("pix: charge spec missing merchant city")
	case s.TxID == "":
		return fmt.Errorf("pix: charge spec missing txid")
	case s.Amount.IsNegative():
		return fmt.Errorf("pix: negative amount %s", s.Amount)
	case len(s.MerchantName) > maxMerchantName:
		return fmt.Errorf("pix: merchant name longer than %d characters", maxMerchantName)
	case len(s.MerchantCity) > maxMerchantCity:
		return fmt.Errorf("pix: merchant city longer than %d characters", maxMerchantCity)
	case len(s.TxID) > maxTxID:
		return fmt.Errorf("pix: txid longer than %d characters", maxTxID)
	case len(s.Key) > maxKey:
		return fmt.Errorf("pix: key longer than %d characters", maxKey)
	}
	return nil
}

// field serializes one tag-length-value unit: 2-character tag, 2-digit
// zero-padded length, raw value.
func field(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

// Encode builds the BRCode string for the charge: the fixed field sequence,
// then the CRC tag with declared length 4 included in the checksummed text,
// then the checksum itself with no separator.
func Encode(spec ChargeSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	merchantInfo := field(subTagGUI, pixGUI) + field(subTagKey, spec.Key)
	additionalData := field(subTagTxID, spec.TxID)

	payload := field(tagPayloadFormat, payloadFormatIndicator) +
		field(tagMerchantInfo, merchantInfo) +
		field(tagCategoryCode, categoryCode) +
		field(tagCurrency, currencyBRL) +
		field(tagAmount, spec.Amount.StringFixed(2)) +
		field(tagCountryCode, countryBR) +
		field(tagMerchantName, spec.MerchantName) +
		field(tagMerchantCity, spec.MerchantCity) +
		field(tagAdditionalData, additionalData) +
		tagCRC + "04"

	return payload + ChecksumHex(payload), nil
}
