package usecase

import (
	"fmt"
	"math"

	"cinema-seating/internal/data/entity"
)

// PriceTable maps each ticket class to its unit price.
type PriceTable map[entity.TicketClass]float64

// DefaultPriceTable returns the house prices.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		entity.TicketStandard:       5000,
		entity.TicketPremium:        8000,
		entity.TicketStandardAllDay: 10000,
		entity.TicketPremiumAllDay:  15000,
	}
}

func (p PriceTable) UnitPrice(class entity.TicketClass) float64 {
	return p[class]
}

// ComputeTotal is seatCount * unit price minus discount. The result is not
// floored, a discount larger than the subtotal gives a negative total.
func (p PriceTable) ComputeTotal(seatCount int, class entity.TicketClass, discount float64) float64 {
	return float64(seatCount)*p.UnitPrice(class) - discount
}

type DiscountKind string

const (
	DiscountNone       DiscountKind = ""
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

// Discount is what the operator asked for; Amount turns it into money.
type Discount struct {
	Kind  DiscountKind
	Value float64
}

// Validate enforces 0-100 for percentages and >= 0 for fixed amounts.
func (d Discount) Validate() error {
	switch d.Kind {
	case DiscountNone:
		return nil
	case DiscountPercentage:
		if math.IsNaN(d.Value) || d.Value < 0 || d.Value > 100 {
			return fmt.Errorf("%w: discount percentage %.2f outside 0-100", ErrValidation, d.Value)
		}
	case DiscountFixed:
		if math.IsNaN(d.Value) || math.IsInf(d.Value, 0) || d.Value < 0 {
			return fmt.Errorf("%w: fixed discount %.2f must not be negative", ErrValidation, d.Value)
		}
	default:
		return fmt.Errorf("%w: unknown discount type %q", ErrValidation, d.Kind)
	}
	return nil
}

// Amount returns the discount in money for the given subtotal.
func (d Discount) Amount(subtotal float64) float64 {
	switch d.Kind {
	case DiscountPercentage:
		return roundCents(subtotal * d.Value / 100)
	case DiscountFixed:
		return d.Value
	}
	return 0
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
