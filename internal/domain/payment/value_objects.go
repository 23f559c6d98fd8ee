package payment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places an amount is stored with.
const AmountScale = 2

// Amount is always rounded half away from zero to AmountScale places, matching NUMERIC(18,2).
type Amount struct {
	value decimal.Decimal
}

func NewAmount(v decimal.Decimal) Amount {
	return Amount{value: v.Round(AmountScale)}
}

func NewAmountFromFloat(f float64) Amount {
	return NewAmount(decimal.NewFromFloat(f))
}

func (a Amount) Decimal() decimal.Decimal { return a.value }
func (a Amount) String() string           { return a.value.String() }

// Float64 is lossy and only meant for presentation.
func (a Amount) Float64() float64 { return a.value.InexactFloat64() }

func (a Amount) Equal(other Amount) bool { return a.value.Equal(other.value) }

// ValueWindow is the inclusive range an intention's value must fall within.
type ValueWindow struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func NewValueWindow(min, max decimal.Decimal) (ValueWindow, error) {
	if min.GreaterThan(max) {
		return ValueWindow{}, fmt.Errorf("value window minimum %s exceeds maximum %s", min, max)
	}
	return ValueWindow{Min: min, Max: max}, nil
}

func (w ValueWindow) Contains(a Amount) bool {
	return a.value.GreaterThanOrEqual(w.Min) && a.value.LessThanOrEqual(w.Max)
}

type WindowMode string

const (
	// WindowRolling counts intentions created in the last Period, ending now.
	WindowRolling WindowMode = "rolling"
	// WindowFixed counts intentions created in the UTC-aligned Period bucket containing now.
	WindowFixed WindowMode = "fixed"
)

func (m WindowMode) IsValid() bool {
	switch m {
	case WindowRolling, WindowFixed:
		return true
	default:
		return false
	}
}

// RateWindow is the time period over which a payer's intention count is bounded.
type RateWindow struct {
	Mode   WindowMode
	Period time.Duration
}

func NewRateWindow(mode WindowMode, period time.Duration) (RateWindow, error) {
	if !mode.IsValid() {
		return RateWindow{}, fmt.Errorf("unknown rate window mode %q", mode)
	}
	if period <= 0 {
		return RateWindow{}, fmt.Errorf("rate window period must be positive, got %s", period)
	}
	return RateWindow{Mode: mode, Period: period}, nil
}

// Bounds returns the inclusive [start, end] interval that contains now.
func (w RateWindow) Bounds(now time.Time) (time.Time, time.Time) {
	if w.Mode == WindowFixed {
		start := now.UTC().Truncate(w.Period)
		return start, start.Add(w.Period - time.Nanosecond)
	}
	return now.Add(-w.Period), now
}

// Policy bundles the configurable constraints applied to every creation attempt.
type Policy struct {
	Values       ValueWindow
	Rate         RateWindow
	MaxPerWindow int
}

func NewPolicy(values ValueWindow, rate RateWindow, maxPerWindow int) (Policy, error) {
	if maxPerWindow < 1 {
		return Policy{}, fmt.Errorf("max per window must be positive, got %d", maxPerWindow)
	}
	return Policy{Values: values, Rate: rate, MaxPerWindow: maxPerWindow}, nil
}
