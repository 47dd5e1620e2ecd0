package query

import (
	"context"

	"github.com/rileyhilliard/raspimon/internal/errors"
)

// GPIOQuery is the GPIO status option. Pin state reading is not supported,
// so it always reports the tool as unavailable and touches no hardware.
type GPIOQuery struct{}

// Kind implements Query.
func (GPIOQuery) Kind() Kind { return KindGPIO }

// Run implements Query and always fails.
func (GPIOQuery) Run(ctx context.Context) (string, error) {
	return "", errors.NewToolFailure(FailureMessage(KindGPIO), nil,
		"Reading GPIO pins isn't supported by raspimon. Try 'pinctrl get' (Raspberry Pi OS Bookworm) or 'raspi-gpio get'.")
}
