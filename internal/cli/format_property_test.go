package cli

import (
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var indianGrouping = regexp.MustCompile(`^(\d{1,2},)*\d{1,3}$`)

func TestPropertyIndianCurrencyFormat(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("always ₹-prefixed with two decimal places", prop.ForAll(
		func(amount float64) bool {
			formatted := FormatIndianCurrency(amount)

			if amount < 0 {
				if !strings.HasPrefix(formatted, "-₹") {
					return false
				}
			} else if !strings.HasPrefix(formatted, "₹") {
				return false
			}

			parts := strings.Split(formatted, ".")
			return len(parts) == 2 && len(parts[1]) == 2
		},
		gen.Float64Range(-1e12, 1e12),
	))

	properties.Property("integer part follows Indian grouping", prop.ForAll(
		func(amount float64) bool {
			formatted := FormatIndianCurrency(amount)
			numPart := strings.TrimPrefix(formatted, "-")
			numPart = strings.TrimPrefix(numPart, "₹")
			numPart = strings.Split(numPart, ".")[0]
			return indianGrouping.MatchString(numPart)
		},
		gen.Float64Range(0, 1e12),
	))

	properties.Property("negation flips only the sign", prop.ForAll(
		func(amount float64) bool {
			if amount == 0 {
				return true
			}
			pos := FormatIndianCurrency(math.Abs(amount))
			neg := FormatIndianCurrency(-math.Abs(amount))
			return neg == "-"+pos
		},
		gen.Float64Range(-1e9, 1e9),
	))

	properties.TestingRun(t)
}
