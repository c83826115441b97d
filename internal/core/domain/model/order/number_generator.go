package order

import (
	"fmt"
	"sync"
	"time"
)

const (
	numberPrefix     = "ORD-"
	numberTimeLayout = "20060102150405"
)

// NumberGenerator issues human-readable order numbers of the form
// "ORD-" followed by a 14-digit UTC timestamp (YYYYMMDDHHMMSS).
//
// The timestamp alone collides when two checkouts land in the same second,
// so issuance is serialized and repeated numbers within one second get a
// disambiguating "-2", "-3", ... suffix. Safe for concurrent use.
type NumberGenerator struct {
	mu        sync.Mutex
	lastStamp string
	seq       int
}

// NewNumberGenerator creates a generator ready for concurrent use.
func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{}
}

// Next returns the order number for a checkout happening at now.
// The first number in a given second is "ORD-<stamp>"; subsequent numbers
// in the same second are "ORD-<stamp>-2", "ORD-<stamp>-3", and so on.
func (g *NumberGenerator) Next(now time.Time) string {
	stamp := now.UTC().Format(numberTimeLayout)

	g.mu.Lock()
	defer g.mu.Unlock()

	if stamp != g.lastStamp {
		g.lastStamp = stamp
		g.seq = 1
		return numberPrefix + stamp
	}

	g.seq++
	return fmt.Sprintf("%s%s-%d", numberPrefix, stamp, g.seq)
}
