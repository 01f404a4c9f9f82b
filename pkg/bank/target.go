package bank

import (
	"fmt"
	"strings"
)

// Target selects one of the three schema-identical storage instances.
// The zero value is TargetTesting.
type Target uint8

const (
	TargetTesting Target = iota
	TargetSeed
	TargetProd
)

const (
	targetLabelSeed    = "SEED"
	targetLabelTesting = "TESTING"
	targetLabelProd    = "PROD"
)

// Targets lists every routable target.
func Targets() []Target {
	return []Target{TargetSeed, TargetTesting, TargetProd}
}

// ParseTarget resolves a case-insensitive selector; empty input selects TESTING.
func ParseTarget(raw string) (Target, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", targetLabelTesting:
		return TargetTesting, nil
	case targetLabelSeed:
		return TargetSeed, nil
	case targetLabelProd:
		return TargetProd, nil
	default:
		return TargetTesting, fmt.Errorf("%w: %q", ErrInvalidTarget, raw)
	}
}

func (target Target) String() string {
	switch target {
	case TargetSeed:
		return targetLabelSeed
	case TargetProd:
		return targetLabelProd
	default:
		return targetLabelTesting
	}
}
