package views

import (
	"estable/core"
	"estable/pkg/number"
)

// Position position view with a traffic light health status
type Position struct {
	core.Position
	HealthStatus string `json:"health_status"`
}

// NewPosition build a position view
func NewPosition(p *core.Position) Position {
	return Position{
		Position:     *p,
		HealthStatus: healthStatus(p),
	}
}

func healthStatus(p *core.Position) string {
	if p.Status != core.PositionStatusActive {
		return "closed"
	}

	switch {
	case p.HealthFactor.LessThan(number.Decimal("1")):
		return "red"
	case p.HealthFactor.LessThan(number.Decimal("1.2")):
		return "yellow"
	default:
		return "green"
	}
}
