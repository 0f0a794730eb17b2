package gst

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords converts a whole rupee amount into Indian-numbering
// words: Hundred, Thousand, Lakh (1,00,000) and Crore (1,00,00,000).
// Paise are the caller's problem (truncate before calling). Negative
// input is unsupported and returns the empty string.
func AmountInWords(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return ""
	}
	return inWords(n)
}

// RupeesInWords formats a currency amount the way it appears on a tax
// document footer, e.g. "One Thousand Two Hundred Rupees Only".
func RupeesInWords(amount float64) string {
	return AmountInWords(int64(amount)) + " Rupees Only"
}

func inWords(n int64) string {
	switch {
	case n < 20:
		return onesWords[n]
	case n < 100:
		s := tensWords[n/10]
		if n%10 > 0 {
			s += " " + onesWords[n%10]
		}
		return s
	case n < 1000:
		return compose(n, 100, "Hundred")
	case n < 100000:
		return compose(n, 1000, "Thousand")
	case n < 10000000:
		return compose(n, 100000, "Lakh")
	default:
		return compose(n, 10000000, "Crore")
	}
}

func compose(n, magnitude int64, name string) string {
	s := inWords(n/magnitude) + " " + name
	if rem := n % magnitude; rem > 0 {
		s += " " + inWords(rem)
	}
	return s
}
