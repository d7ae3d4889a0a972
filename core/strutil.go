package core

// Number formatting for the debug log and error messages. The firmware
// avoids fmt to keep the image small.

const hexDigits = "0123456789abcdef"

// utoa formats n in decimal
func utoa(n uint32) string {
	var buf [10]byte
	i := len(buf)
	for {
		i--
		buf[i] = '0' + byte(n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return string(buf[i:])
}

// itoa formats a signed n in decimal
func itoa(n int) string {
	if n < 0 {
		return "-" + utoa(uint32(-n))
	}
	return utoa(uint32(n))
}

// hexa formats v as 0x followed by eight hex digits
func hexa(v uint32) string {
	buf := [10]byte{'0', 'x'}
	for i := len(buf) - 1; i >= 2; i-- {
		buf[i] = hexDigits[v&0xF]
		v >>= 4
	}
	return string(buf[:])
}
