// Package cli provides the command-line interface for the payoff builder.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/kshitizgarg19/payoff-builder/internal/errors"
	"github.com/kshitizgarg19/payoff-builder/internal/models"
	"github.com/kshitizgarg19/payoff-builder/internal/strategy"
)

// ParseLegSpec parses a colon-separated leg specification.
//
// Options:  side:instrument:strike:premium[:lot]
// Futures:  side:fut[:lot]
//
// e.g. "buy:call:48200:320:25", "sell:pe:100:5", "long:fut:2".
func ParseLegSpec(spec string) (models.Leg, error) {
	parts := strings.Split(strings.TrimSpace(spec), ":")
	if len(parts) < 2 {
		return models.Leg{}, apperrors.NewValidationError("leg", spec, "expected side:instrument[:strike:premium][:lot]")
	}

	position, err := models.ParsePositionSide(parts[0])
	if err != nil {
		return models.Leg{}, err
	}
	instrument, err := models.ParseInstrumentType(parts[1])
	if err != nil {
		return models.Leg{}, err
	}

	if instrument == models.InstrumentFuture {
		lot := 1
		if len(parts) > 3 {
			return models.Leg{}, apperrors.NewValidationError("leg", spec, "futures legs take no strike or premium")
		}
		if len(parts) == 3 {
			lot, err = parseLot(parts[2])
			if err != nil {
				return models.Leg{}, err
			}
		}
		return models.NewFutureLeg(position, lot)
	}

	if len(parts) < 4 || len(parts) > 5 {
		return models.Leg{}, apperrors.NewValidationError("leg", spec, "option legs need side:instrument:strike:premium[:lot]")
	}
	strike, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return models.Leg{}, apperrors.NewValidationError("strike", parts[2], "not a number")
	}
	premium, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return models.Leg{}, apperrors.NewValidationError("premium", parts[3], "not a number")
	}
	lot := 1
	if len(parts) == 5 {
		lot, err = parseLot(parts[4])
		if err != nil {
			return models.Leg{}, err
		}
	}
	return models.NewOptionLeg(instrument, position, strike, premium, lot)
}

func parseLot(s string) (int, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "x")
	lot, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.NewValidationError("lot", s, "not an integer")
	}
	return lot, nil
}

// BuildStrategy assembles a strategy from leg specifications through the
// builder, so each leg passes the construction boundary.
func BuildStrategy(specs []string) (models.Strategy, error) {
	builder := strategy.NewBuilder()
	for i, spec := range specs {
		leg, err := ParseLegSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", i+1, err)
		}
		if err := builder.Add(leg); err != nil {
			return nil, fmt.Errorf("leg %d: %w", i+1, err)
		}
	}
	return builder.Legs(), nil
}
