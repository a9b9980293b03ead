package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbbrevThresholds(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{25_000_000, "₹2.50Cr"},
		{10_000_000, "₹1.00Cr"},
		{9_950_000, "₹99.50L"},
		{250_000, "₹2.50L"},
		{100_000, "₹1.00L"},
		{99_999, "₹100.0K"},
		{1_500, "₹1.5K"},
		{1_000, "₹1.0K"},
		{999, "₹999"},
		{0, "₹0"},
		{-5, "₹-5"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Abbrev(tc.in), "Abbrev(%v)", tc.in)
	}
}

func TestAbbrevNonFinite(t *testing.T) {
	assert.Equal(t, "₹0", Abbrev(math.NaN()))
	assert.Equal(t, "₹0", Abbrev(math.Inf(1)))
	assert.Equal(t, "₹0", Abbrev(math.Inf(-1)))
}

func TestFullGrouping(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234567.891, "₹1,234,567.89"},
		{1000, "₹1,000.00"},
		{999.5, "₹999.50"},
		{0, "₹0.00"},
		{-1234.5, "₹-1,234.50"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Full(tc.in), "Full(%v)", tc.in)
	}
}

func TestFullNonFinite(t *testing.T) {
	assert.Equal(t, "₹0.00", Full(math.NaN()))
	assert.Equal(t, "₹0.00", Full(math.Inf(1)))
}

func TestInteger(t *testing.T) {
	assert.Equal(t, "1,500", Integer(1500))
	assert.Equal(t, "150", Integer(150.4))
	assert.Equal(t, "0", Integer(math.NaN()))
}
