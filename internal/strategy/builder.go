// Package strategy provides the mutable strategy builder that the CLI
// and HTTP server drive. It is the validation boundary: legs that fail
// the model invariants never make it into the strategy, so downstream
// payoff computation can assume well-formed input.
package strategy

import (
	apperrors "github.com/kshitizgarg19/payoff-builder/internal/errors"
	"github.com/kshitizgarg19/payoff-builder/internal/models"
)

// LegPatch is a partial update to a leg. Nil fields are left unchanged.
// Switching an option leg to a future clears strike and premium;
// switching a future to an option requires both to be supplied.
type LegPatch struct {
	Instrument *models.InstrumentType `json:"instrument,omitempty"`
	Position   *models.PositionSide   `json:"position,omitempty"`
	Strike     *float64               `json:"strike,omitempty"`
	Premium    *float64               `json:"premium,omitempty"`
	LotSize    *int                   `json:"lot_size,omitempty"`
}

// Builder owns one strategy and mutates it through validated commands.
// It is not safe for concurrent use; a single session owns it.
type Builder struct {
	legs models.Strategy
}

// NewBuilder creates an empty strategy builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a leg after validating it.
func (b *Builder) Add(leg models.Leg) error {
	if err := leg.Validate(); err != nil {
		return err
	}
	b.legs = append(b.legs, leg)
	return nil
}

// Update applies a patch to the leg at index. The patched leg is
// validated before it replaces the original, so a failed update leaves
// the strategy unchanged.
func (b *Builder) Update(index int, patch LegPatch) error {
	if index < 0 || index >= len(b.legs) {
		return apperrors.ErrLegIndexOutOfRange
	}
	leg := b.legs[index]
	if patch.Instrument != nil {
		wasOption := leg.Instrument.IsOption()
		leg.Instrument = *patch.Instrument
		if wasOption && !leg.Instrument.IsOption() {
			leg.Strike = nil
			leg.Premium = nil
		}
	}
	if patch.Position != nil {
		leg.Position = *patch.Position
	}
	if patch.Strike != nil {
		v := *patch.Strike
		leg.Strike = &v
	}
	if patch.Premium != nil {
		v := *patch.Premium
		leg.Premium = &v
	}
	if patch.LotSize != nil {
		leg.LotSize = *patch.LotSize
	}
	if err := leg.ValidateAt(index); err != nil {
		return err
	}
	b.legs[index] = leg
	return nil
}

// Remove deletes the leg at index, preserving the order of the rest.
func (b *Builder) Remove(index int) error {
	if index < 0 || index >= len(b.legs) {
		return apperrors.ErrLegIndexOutOfRange
	}
	b.legs = append(b.legs[:index], b.legs[index+1:]...)
	return nil
}

// Clear removes every leg.
func (b *Builder) Clear() {
	b.legs = nil
}

// Legs returns a copy of the current strategy.
func (b *Builder) Legs() models.Strategy {
	return b.legs.Clone()
}

// Len returns the number of legs.
func (b *Builder) Len() int {
	return len(b.legs)
}
