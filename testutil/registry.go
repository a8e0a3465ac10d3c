package testutil

import (
	"time"

	"github.com/skobelev/tooldoc"
)

// NewTestRegistry returns a Registry with long timeout and panic recovery
// enabled, suitable for tests.
func NewTestRegistry(tools ...tooldoc.Tool) *tooldoc.Registry {
	reg := tooldoc.NewRegistry(
		tooldoc.WithDefaultTimeout(30*time.Second),
		tooldoc.WithRecoverPanics(true),
	)
	for _, t := range tools {
		reg.Register(t)
	}
	return reg
}
