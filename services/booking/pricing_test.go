package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceForDuration(t *testing.T) {
	cases := map[string]string{
		"30": "$50",
		"45": "$75",
		"60": "$95",
	}
	for duration, want := range cases {
		price, ok := PriceForDuration(duration)
		assert.True(t, ok)
		assert.Equal(t, want, price)
	}

	_, ok := PriceForDuration("90")
	assert.False(t, ok)
}
