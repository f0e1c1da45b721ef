package pix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksumHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string is the initial register", input: "", want: "FFFF"},
		{name: "standard check value", input: "123456789", want: "29B1"},
		{name: "single byte", input: "A", want: "B915"},
		{name: "payload format field", input: "000201", want: "89B9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChecksumHex(tt.input))
		})
	}
}

func TestChecksumTableMatchesBitwise(t *testing.T) {
	// The table-driven result must equal a plain bit-by-bit CRC16/CCITT-FALSE.
	bitwise := func(s string) uint16 {
		crc := uint16(0xFFFF)
		for i := 0; i < len(s); i++ {
			crc ^= uint16(s[i]) << 8
			for bit := 0; bit < 8; bit++ {
				if crc&0x8000 != 0 {
					crc = crc<<1 ^ 0x1021
				} else {
					crc <<= 1
				}
			}
		}
		return crc
	}

	inputs := []string{"", "a", "br.gov.bcb.pix", "00020126370014br.gov.bcb.pix", "123456789"}
	for _, in := range inputs {
		assert.Equal(t, bitwise(in), Checksum(in), "input %q", in)
	}
}
