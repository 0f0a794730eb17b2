package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "Zero"},
		{5, "Five"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{105, "One Hundred Five"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{1234, "One Thousand Two Hundred Thirty Four"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "One Lakh"},
		{250000, "Two Lakh Fifty Thousand"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, AmountInWords(tc.n), "n=%d", tc.n)
	}
}

func TestAmountInWordsNegative(t *testing.T) {
	assert.Equal(t, "", AmountInWords(-1))
}

func TestRupeesInWordsDropsPaise(t *testing.T) {
	assert.Equal(t, "One Thousand Sixty Two Rupees Only", RupeesInWords(1062.75))
	assert.Equal(t, "Zero Rupees Only", RupeesInWords(0.99))
}
