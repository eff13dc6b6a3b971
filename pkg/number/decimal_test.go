package number

import (
	"testing"

	"github.com/bmizerany/assert"
	"estable/core"
)

func TestMulRate(t *testing.T) {
	data := map[string]string{
		"100":    "15",
		"149":    "22.35",
		"0.0001": "0.000015",
		"1000":   "150",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			r := MulRate(Decimal(k), 1500)
			assert.Equal(t, v, r.String(), "should be amount * 15%")
		})
	}
}

func TestMulFactor(t *testing.T) {
	data := map[string]string{
		"100": "120",
		"1":   "1.2",
		"0":   "0",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			r := MulFactor(Decimal(k), 120)
			assert.Equal(t, v, r.String(), "should be amount * 1.2")
		})
	}
}

func TestDiv(t *testing.T) {
	r, err := Div(Decimal("200"), Decimal("150"))
	assert.Equal(t, nil, err)
	assert.Equal(t, "1.33333333", r.String(), "should truncate down")

	_, err = Div(Decimal("1"), Decimal("0"))
	assert.Equal(t, core.ErrDivisionByZero, err)
}

func TestCheckRange(t *testing.T) {
	assert.Equal(t, nil, CheckRange(Decimal("999999999999")))
	assert.Equal(t, core.ErrArithmeticOverflow, CheckRange(Decimal("1e25")))
}
