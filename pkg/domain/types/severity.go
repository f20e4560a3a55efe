package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Severity score bounds, inclusive
const (
	MinSeverity = 1
	MaxSeverity = 10
)

// ValidateSeverity checks that a severity score lies within [MinSeverity, MaxSeverity]
func ValidateSeverity(severity int) error {
	if severity < MinSeverity || severity > MaxSeverity {
		return goerr.New("severity must be between 1 and 10", goerr.V("severity", severity))
	}
	return nil
}

// Band is a named severity range
type Band string

const (
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
)

// Bands lists the severity bands from lowest to highest
func Bands() []Band {
	return []Band{BandLow, BandMedium, BandHigh}
}

// String returns the string representation of the band
func (b Band) String() string {
	return string(b)
}

// IsValid checks if the band is known
func (b Band) IsValid() bool {
	switch b {
	case BandLow, BandMedium, BandHigh:
		return true
	default:
		return false
	}
}

// Bounds returns the inclusive severity interval of the band.
// Unknown bands return an empty interval (min > max).
func (b Band) Bounds() (min, max int) {
	switch b {
	case BandLow:
		return 1, 3
	case BandMedium:
		return 4, 7
	case BandHigh:
		return 8, 10
	default:
		return 1, 0
	}
}

// Description returns a short explanation of what the band means on the ground
func (b Band) Description() string {
	switch b {
	case BandLow:
		return "Small accumulation, low risk."
	case BandMedium:
		return "Considerable accumulation, needs management attention."
	case BandHigh:
		return "Critical point, public health risk, urgent action."
	default:
		return ""
	}
}

// ParseBand normalizes user input and checks it against the known bands
func ParseBand(input string) (Band, error) {
	b := Band(strings.ToLower(strings.TrimSpace(input)))
	if !b.IsValid() {
		return "", goerr.Wrap(ErrInvalidBand, "failed to parse band", goerr.V("band", input))
	}
	return b, nil
}
