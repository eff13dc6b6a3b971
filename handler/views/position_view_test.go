package views

import (
	"testing"

	"estable/core"
	"estable/pkg/number"

	"github.com/bmizerany/assert"
)

func TestHealthStatus(t *testing.T) {
	for hf, expect := range map[string]string{
		"0.99999999": "red",
		"1":          "yellow",
		"1.19999999": "yellow",
		"1.2":        "green",
		"1.33333333": "green",
	} {
		p := &core.Position{
			Status:       core.PositionStatusActive,
			HealthFactor: number.Decimal(hf),
		}
		assert.Equal(t, expect, NewPosition(p).HealthStatus)
	}

	closed := &core.Position{Status: core.PositionStatusClosed}
	assert.Equal(t, "closed", NewPosition(closed).HealthStatus)
}
