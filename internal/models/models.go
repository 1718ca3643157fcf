// Package models defines the core data types for strategy construction.
package models

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/kshitizgarg19/payoff-builder/internal/errors"
)

// InstrumentType identifies the kind of instrument a leg holds.
type InstrumentType string

const (
	InstrumentCall   InstrumentType = "CALL"
	InstrumentPut    InstrumentType = "PUT"
	InstrumentFuture InstrumentType = "FUTURE"
)

// IsOption returns true for call and put legs.
func (t InstrumentType) IsOption() bool {
	return t == InstrumentCall || t == InstrumentPut
}

// Valid returns true if the instrument type is recognized.
func (t InstrumentType) Valid() bool {
	return t == InstrumentCall || t == InstrumentPut || t == InstrumentFuture
}

// ParseInstrumentType parses an instrument type from user input.
// Accepts NSE-style suffixes (CE/PE/FUT) as well as full names.
func ParseInstrumentType(s string) (InstrumentType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CALL", "CE", "C":
		return InstrumentCall, nil
	case "PUT", "PE", "P":
		return InstrumentPut, nil
	case "FUTURE", "FUT", "F":
		return InstrumentFuture, nil
	}
	return "", apperrors.NewValidationError("instrument", s, "must be CALL, PUT, or FUTURE")
}

// PositionSide identifies the direction of a leg.
type PositionSide string

const (
	PositionLong  PositionSide = "LONG"
	PositionShort PositionSide = "SHORT"
)

// Valid returns true if the position side is recognized.
func (p PositionSide) Valid() bool {
	return p == PositionLong || p == PositionShort
}

// Opposite returns the other side.
func (p PositionSide) Opposite() PositionSide {
	if p == PositionLong {
		return PositionShort
	}
	return PositionLong
}

// ParsePositionSide parses a position side from user input.
func ParsePositionSide(s string) (PositionSide, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LONG", "BUY", "B", "L":
		return PositionLong, nil
	case "SHORT", "SELL", "S":
		return PositionShort, nil
	}
	return "", apperrors.NewValidationError("position", s, "must be LONG or SHORT")
}

// Leg represents one position in a strategy.
// Strike and Premium are nil for futures legs and required for options.
type Leg struct {
	Instrument InstrumentType `json:"instrument"`
	Position   PositionSide   `json:"position"`
	Strike     *float64       `json:"strike,omitempty"`
	Premium    *float64       `json:"premium,omitempty"`
	LotSize    int            `json:"lot_size"`
}

// NewOptionLeg creates a validated call or put leg.
func NewOptionLeg(instrument InstrumentType, position PositionSide, strike, premium float64, lotSize int) (Leg, error) {
	leg := Leg{
		Instrument: instrument,
		Position:   position,
		Strike:     &strike,
		Premium:    &premium,
		LotSize:    lotSize,
	}
	if !instrument.IsOption() {
		return Leg{}, apperrors.NewLegError(-1, "instrument", "option leg must be CALL or PUT")
	}
	if err := leg.Validate(); err != nil {
		return Leg{}, err
	}
	return leg, nil
}

// NewFutureLeg creates a validated futures leg.
func NewFutureLeg(position PositionSide, lotSize int) (Leg, error) {
	leg := Leg{
		Instrument: InstrumentFuture,
		Position:   position,
		LotSize:    lotSize,
	}
	if err := leg.Validate(); err != nil {
		return Leg{}, err
	}
	return leg, nil
}

// Validate checks the leg invariants. Option legs need a non-negative
// strike and premium; futures legs must not carry either. Lot size is
// at least 1 for every leg.
func (l Leg) Validate() error {
	return l.ValidateAt(-1)
}

// ValidateAt is Validate with the leg's position in the strategy, for
// error messages that point at a specific leg.
func (l Leg) ValidateAt(index int) error {
	if !l.Instrument.Valid() {
		return apperrors.NewLegError(index, "instrument", fmt.Sprintf("unknown instrument %q", string(l.Instrument)))
	}
	if !l.Position.Valid() {
		return apperrors.NewLegError(index, "position", fmt.Sprintf("unknown position %q", string(l.Position)))
	}
	if l.LotSize < 1 {
		return apperrors.NewLegError(index, "lot_size", "must be at least 1")
	}
	if l.Instrument.IsOption() {
		if l.Strike == nil {
			return apperrors.NewLegError(index, "strike", "required for option legs")
		}
		if *l.Strike < 0 {
			return apperrors.NewLegError(index, "strike", "must be non-negative")
		}
		if l.Premium == nil {
			return apperrors.NewLegError(index, "premium", "required for option legs")
		}
		if *l.Premium < 0 {
			return apperrors.NewLegError(index, "premium", "must be non-negative")
		}
		return nil
	}
	if l.Strike != nil {
		return apperrors.NewLegError(index, "strike", "not allowed on futures legs")
	}
	if l.Premium != nil {
		return apperrors.NewLegError(index, "premium", "not allowed on futures legs")
	}
	return nil
}

// StrikeValue returns the strike, or 0 when absent.
func (l Leg) StrikeValue() float64 {
	if l.Strike != nil {
		return *l.Strike
	}
	return 0
}

// PremiumValue returns the premium, or 0 when absent.
func (l Leg) PremiumValue() float64 {
	if l.Premium != nil {
		return *l.Premium
	}
	return 0
}

// Describe returns a short human-readable description of the leg.
func (l Leg) Describe() string {
	if l.Instrument.IsOption() {
		return fmt.Sprintf("%s %s %.2f @ %.2f x%d",
			l.Position, l.Instrument, l.StrikeValue(), l.PremiumValue(), l.LotSize)
	}
	return fmt.Sprintf("%s %s x%d", l.Position, l.Instrument, l.LotSize)
}

// Strategy is an ordered sequence of legs. Order is insertion order; it
// matters for display only, never for valuation.
type Strategy []Leg

// Validate checks every leg in the strategy.
func (s Strategy) Validate() error {
	for i, leg := range s {
		if err := leg.ValidateAt(i); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a copy of the strategy that shares no leg storage.
func (s Strategy) Clone() Strategy {
	if s == nil {
		return nil
	}
	out := make(Strategy, len(s))
	for i, leg := range s {
		if leg.Strike != nil {
			v := *leg.Strike
			leg.Strike = &v
		}
		if leg.Premium != nil {
			v := *leg.Premium
			leg.Premium = &v
		}
		out[i] = leg
	}
	return out
}

// MarketContext holds the market inputs for a payoff evaluation.
type MarketContext struct {
	Underlying string     `json:"underlying,omitempty"`
	SpotPrice  float64    `json:"spot_price"`
	LivePrice  float64    `json:"live_price,omitempty"`
	Expiry     *time.Time `json:"expiry,omitempty"` // advisory, not used in payoff math
}

// NewMarketContext creates a validated market context. A zero livePrice
// defaults to the spot price.
func NewMarketContext(underlying string, spotPrice, livePrice float64) (MarketContext, error) {
	mc := MarketContext{
		Underlying: underlying,
		SpotPrice:  spotPrice,
		LivePrice:  livePrice,
	}
	if mc.LivePrice == 0 {
		mc.LivePrice = spotPrice
	}
	if err := mc.Validate(); err != nil {
		return MarketContext{}, err
	}
	return mc, nil
}

// Validate checks the market context invariants.
func (m MarketContext) Validate() error {
	if m.SpotPrice <= 0 {
		return apperrors.NewMarketContextError("spot_price", m.SpotPrice, "must be positive")
	}
	if m.LivePrice < 0 {
		return apperrors.NewMarketContextError("live_price", m.LivePrice, "must be non-negative")
	}
	return nil
}

// EffectiveLivePrice returns the live price, falling back to spot.
func (m MarketContext) EffectiveLivePrice() float64 {
	if m.LivePrice > 0 {
		return m.LivePrice
	}
	return m.SpotPrice
}
