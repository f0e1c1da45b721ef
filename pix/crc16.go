package pix

import "fmt"

// CRC16/CCITT-FALSE: polynomial 0x1021, initial register 0xFFFF, no
// reflection. This is the integrity suffix every BRCode reader verifies.
const crcPoly = 0x1021

var crcTable [256]uint16

func init() {
	for i := 0; i < 256; i++ {
		crc := uint16(i) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crcPoly
			} else {
				crc <<= 1
			}
		}
		crcTable[i] = crc
	}
}

// Checksum computes the CRC16/CCITT-FALSE of s, processed byte by byte.
func Checksum(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc = crc<<8 ^ crcTable[byte(crc>>8)^s[i]]
	}
	return crc
}

// ChecksumHex returns the checksum as four uppercase zero-padded hex digits,
// the form appended to the payload.
func ChecksumHex(s string) string {
	return fmt.Sprintf("%04X", Checksum(s))
}
