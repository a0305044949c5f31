package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// TicketClass is the priced variant a seat is sold under.
// Numeric values are persisted in ledger files, do not reorder.
type TicketClass int

const (
	TicketStandard TicketClass = iota
	TicketPremium
	TicketStandardAllDay
	TicketPremiumAllDay
)

// TicketClasses lists every class in menu order.
var TicketClasses = []TicketClass{
	TicketStandard,
	TicketPremium,
	TicketStandardAllDay,
	TicketPremiumAllDay,
}

var ticketClassNames = map[TicketClass]string{
	TicketStandard:       "Standard",
	TicketPremium:        "Premium",
	TicketStandardAllDay: "StandardAllDay",
	TicketPremiumAllDay:  "PremiumAllDay",
}

// legacy names written by the first release of the ledger files
var legacyTicketClassNames = map[string]TicketClass{
	"regular":       TicketStandard,
	"deluxe":        TicketPremium,
	"alldayregular": TicketStandardAllDay,
	"alldaydeluxe":  TicketPremiumAllDay,
}

func (t TicketClass) String() string {
	if name, ok := ticketClassNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TicketClass(%d)", int(t))
}

func (t TicketClass) Valid() bool {
	return t >= TicketStandard && t <= TicketPremiumAllDay
}

// Pool returns the conflict group of the class.
func (t TicketClass) Pool() Pool {
	switch t {
	case TicketPremium, TicketPremiumAllDay:
		return PoolPremium
	default:
		return PoolStandard
	}
}

// LegacyName is the name used as dictionary key in catalog files.
func (t TicketClass) LegacyName() string {
	switch t {
	case TicketStandard:
		return "Regular"
	case TicketPremium:
		return "Deluxe"
	case TicketStandardAllDay:
		return "AllDayRegular"
	case TicketPremiumAllDay:
		return "AllDayDeluxe"
	}
	return t.String()
}

// ParseTicketClass accepts current names, legacy names and numeric values.
func ParseTicketClass(s string) (TicketClass, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for class, name := range ticketClassNames {
		if strings.ToLower(name) == key {
			return class, nil
		}
	}
	if class, ok := legacyTicketClassNames[key]; ok {
		return class, nil
	}
	if n, err := strconv.Atoi(key); err == nil && TicketClass(n).Valid() {
		return TicketClass(n), nil
	}
	return 0, fmt.Errorf("unknown ticket class %q", s)
}

// Pool groups ticket classes that compete for the same seats.
type Pool int

const (
	PoolStandard Pool = iota
	PoolPremium

	numPools = 2
)

func (p Pool) String() string {
	if p == PoolPremium {
		return "PremiumAccess"
	}
	return "StandardAccess"
}

// Classes returns the two variants sharing this pool.
func (p Pool) Classes() [2]TicketClass {
	if p == PoolPremium {
		return [2]TicketClass{TicketPremium, TicketPremiumAllDay}
	}
	return [2]TicketClass{TicketStandard, TicketStandardAllDay}
}
