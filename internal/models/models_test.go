package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	apperrors "github.com/kshitizgarg19/payoff-builder/internal/errors"
)

func f64(v float64) *float64 { return &v }

func TestParseInstrumentType(t *testing.T) {
	testCases := []struct {
		input   string
		want    InstrumentType
		wantErr bool
	}{
		{"call", InstrumentCall, false},
		{"CE", InstrumentCall, false},
		{" c ", InstrumentCall, false},
		{"put", InstrumentPut, false},
		{"PE", InstrumentPut, false},
		{"future", InstrumentFuture, false},
		{"FUT", InstrumentFuture, false},
		{"f", InstrumentFuture, false},
		{"swap", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseInstrumentType(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestParsePositionSide(t *testing.T) {
	testCases := []struct {
		input   string
		want    PositionSide
		wantErr bool
	}{
		{"buy", PositionLong, false},
		{"LONG", PositionLong, false},
		{"b", PositionLong, false},
		{"sell", PositionShort, false},
		{"short", PositionShort, false},
		{"hold", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParsePositionSide(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestLegValidate(t *testing.T) {
	testCases := []struct {
		name    string
		leg     Leg
		wantErr bool
	}{
		{
			name: "valid call",
			leg:  Leg{Instrument: InstrumentCall, Position: PositionLong, Strike: f64(100), Premium: f64(5), LotSize: 1},
		},
		{
			name: "valid put",
			leg:  Leg{Instrument: InstrumentPut, Position: PositionShort, Strike: f64(0), Premium: f64(0), LotSize: 25},
		},
		{
			name: "valid future",
			leg:  Leg{Instrument: InstrumentFuture, Position: PositionLong, LotSize: 2},
		},
		{
			name:    "option missing strike",
			leg:     Leg{Instrument: InstrumentCall, Position: PositionLong, Premium: f64(5), LotSize: 1},
			wantErr: true,
		},
		{
			name:    "option missing premium",
			leg:     Leg{Instrument: InstrumentPut, Position: PositionLong, Strike: f64(100), LotSize: 1},
			wantErr: true,
		},
		{
			name:    "negative strike",
			leg:     Leg{Instrument: InstrumentCall, Position: PositionLong, Strike: f64(-1), Premium: f64(5), LotSize: 1},
			wantErr: true,
		},
		{
			name:    "negative premium",
			leg:     Leg{Instrument: InstrumentCall, Position: PositionLong, Strike: f64(100), Premium: f64(-5), LotSize: 1},
			wantErr: true,
		},
		{
			name:    "zero lot",
			leg:     Leg{Instrument: InstrumentCall, Position: PositionLong, Strike: f64(100), Premium: f64(5), LotSize: 0},
			wantErr: true,
		},
		{
			name:    "future with strike",
			leg:     Leg{Instrument: InstrumentFuture, Position: PositionLong, Strike: f64(100), LotSize: 1},
			wantErr: true,
		},
		{
			name:    "future with premium",
			leg:     Leg{Instrument: InstrumentFuture, Position: PositionShort, Premium: f64(5), LotSize: 1},
			wantErr: true,
		},
		{
			name:    "unknown instrument",
			leg:     Leg{Instrument: "SWAP", Position: PositionLong, LotSize: 1},
			wantErr: true,
		},
		{
			name:    "unknown position",
			leg:     Leg{Instrument: InstrumentFuture, Position: "FLAT", LotSize: 1},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.leg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !apperrors.Is(err, apperrors.ErrInvalidLeg) {
					t.Errorf("error %v does not wrap ErrInvalidLeg", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewOptionLegRejectsFuture(t *testing.T) {
	if _, err := NewOptionLeg(InstrumentFuture, PositionLong, 100, 5, 1); err == nil {
		t.Fatal("expected error for future instrument")
	}
}

func TestNewMarketContext(t *testing.T) {
	mc, err := NewMarketContext("BANKNIFTY", 48200, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mc.LivePrice != 48200 {
		t.Errorf("LivePrice = %.2f, want spot default 48200", mc.LivePrice)
	}

	mc, err = NewMarketContext("GOLD", 72000, 72350)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mc.LivePrice != 72350 {
		t.Errorf("LivePrice = %.2f, want 72350", mc.LivePrice)
	}

	if _, err := NewMarketContext("X", 0, 0); err == nil {
		t.Fatal("expected error for zero spot")
	}
	if _, err := NewMarketContext("X", -10, 0); err == nil {
		t.Fatal("expected error for negative spot")
	}
	if _, err := NewMarketContext("X", 100, 50); err != nil {
		t.Fatalf("live below spot should be fine: %v", err)
	}
}

func TestMarketContextJSONOmitsUnsetExpiry(t *testing.T) {
	mc, err := NewMarketContext("NIFTY", 100, 0)
	if err != nil {
		t.Fatalf("NewMarketContext: %v", err)
	}

	data, err := json.Marshal(mc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(data), "expiry") {
		t.Errorf("unset expiry should be omitted, got %s", data)
	}

	expiry := time.Date(2026, 9, 24, 0, 0, 0, 0, time.UTC)
	mc.Expiry = &expiry
	data, err = json.Marshal(mc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "2026-09-24") {
		t.Errorf("set expiry should be serialized, got %s", data)
	}
}

func TestMarketContextValidateWrapsSentinel(t *testing.T) {
	mc := MarketContext{SpotPrice: -1}
	err := mc.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !apperrors.Is(err, apperrors.ErrInvalidMarketContext) {
		t.Errorf("error %v does not wrap ErrInvalidMarketContext", err)
	}
}

func TestStrategyClone(t *testing.T) {
	leg, err := NewFutureLeg(PositionLong, 2)
	if err != nil {
		t.Fatalf("NewFutureLeg: %v", err)
	}
	s := Strategy{leg}
	c := s.Clone()
	c[0].LotSize = 99
	if s[0].LotSize != 2 {
		t.Errorf("clone mutated the original: lot = %d", s[0].LotSize)
	}
}

func TestLegDescribe(t *testing.T) {
	opt, _ := NewOptionLeg(InstrumentCall, PositionLong, 100, 5, 25)
	if got := opt.Describe(); got != "LONG CALL 100.00 @ 5.00 x25" {
		t.Errorf("Describe() = %q", got)
	}
	fut, _ := NewFutureLeg(PositionShort, 2)
	if got := fut.Describe(); got != "SHORT FUTURE x2" {
		t.Errorf("Describe() = %q", got)
	}
}
