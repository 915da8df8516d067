package anchoring

import (
	"math"
	"strconv"
	"strings"
)

// formatAmount renders v with the shortest round-trip digits, in positional notation when the
// decimal exponent lies in (-7, 21] and in exponential notation otherwise: 150.5, 3, 1e+21,
// 1e-7. Digests anchored by earlier SDK releases were computed over this rendering, so it must
// not change.
func formatAmount(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	// d.ddddde±x
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, expPart, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expPart)
	digits := strings.Replace(mantissa, ".", "", 1)

	k := len(digits)
	n := exp + 1 // position of the decimal point relative to digits

	var b strings.Builder
	b.WriteString(sign)

	switch {
	case k <= n && n <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if n-1 >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(n - 1))
	}

	return b.String()
}
