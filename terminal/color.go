package terminal

import "strconv"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// FormatFg wraps symbol in a truecolor foreground sequence followed by a
// reset, so formatted symbols compose safely inside a frame string
func FormatFg(symbol string, c RGB) string {
	buf := make([]byte, 0, len(csiFgRGB)+12+len(symbol)+len(csiReset))
	buf = append(buf, csiFgRGB...)
	buf = strconv.AppendUint(buf, uint64(c.R), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.G), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.B), 10)
	buf = append(buf, 'm')
	buf = append(buf, symbol...)
	buf = append(buf, csiReset...)
	return string(buf)
}
