package protocol

// CRC16 returns the CRC-16/MCRF4XX (reflected 0x1021, init 0xFFFF) of a
// frame's header and payload
func CRC16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, v := range data {
		x := v ^ byte(crc)
		x ^= x << 4
		w := uint16(x)
		crc = (w<<8 | crc>>8) ^ w>>4 ^ w<<3
	}
	return crc
}
