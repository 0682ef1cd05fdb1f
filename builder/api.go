package builder

import (
	"fmt"

	"github.com/katalvlaran/junctionbox/geom"
)

// Constructor produces points from the resolved builderConfig. Constructors
// validate parameters and return sentinel errors; they never panic.
type Constructor func(cfg builderConfig) ([]geom.Point, error)

// BuildPoints resolves bopts once and concatenates the points of every
// constructor in order. The first error aborts the build.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildPoints(bopts []BuilderOption, cons ...Constructor) ([]geom.Point, error) {
	cfg := newBuilderConfig(bopts...)

	var out []geom.Point
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildPoints: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		pts, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildPoints: %w", err)
		}
		out = append(out, pts...)
	}
	return out, nil
}
