package scanner

// Less reports whether a orders before b under the scanner's filename
// comparison. Names are compared as alternating runs of digits and
// non-digits: digit runs compare by numeric value (so "2.jpg" sorts
// before "10.jpg"), non-digit runs compare bytewise, and at a boundary
// where one name has a digit run and the other does not, the alphabetic
// name orders first ("a.png" before "10.png"). The comparison is
// byte-based and locale-independent.
func Less(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		aRun, aRest := splitRun(a)
		bRun, bRest := splitRun(b)

		aNumeric := isDigit(a[0])
		bNumeric := isDigit(b[0])

		switch {
		case aNumeric && bNumeric:
			if c := compareNumeric(aRun, bRun); c != 0 {
				return c < 0
			}
		case aNumeric != bNumeric:
			// Alphabetic runs order before numeric runs.
			return bNumeric
		default:
			if aRun != bRun {
				return aRun < bRun
			}
		}

		a, b = aRest, bRest
	}
	return len(a) < len(b)
}

// splitRun splits s into its leading run (all digits or all non-digits)
// and the remainder.
func splitRun(s string) (run, rest string) {
	digit := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digit {
		i++
	}
	return s[:i], s[i:]
}

// compareNumeric compares two digit runs by numeric value without
// converting to integers, so arbitrarily long runs are safe.
func compareNumeric(a, b string) int {
	a = trimLeadingZeros(a)
	b = trimLeadingZeros(b)

	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
