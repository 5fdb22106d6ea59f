package bintree

import (
	"fmt"

	"github.com/npillmayer/uax/uax11"
)

// TieBreak selects which of several nodes at maximal depth DeepestNode reports.
type TieBreak int

const (
	// TieGreatest reports the greatest element among the deepest nodes.
	// Between equal elements the left one wins.
	TieGreatest TieBreak = iota
	// TieLeftmost reports the leftmost of the deepest nodes.
	TieLeftmost
	// TieRightmost reports the rightmost of the deepest nodes.
	TieRightmost
)

func (tb TieBreak) String() string {
	switch tb {
	case TieGreatest:
		return "greatest"
	case TieLeftmost:
		return "leftmost"
	case TieRightmost:
		return "rightmost"
	}
	return fmt.Sprintf("TieBreak(%d)", int(tb))
}

// PruneBoundary decides the fate of a path whose sum hits the PruneK
// threshold exactly.
type PruneBoundary int

const (
	// PruneBelow drops paths with sum < k. A path summing to exactly k is kept.
	PruneBelow PruneBoundary = iota
	// PruneAtOrBelow drops paths with sum <= k.
	PruneAtOrBelow
)

func (pb PruneBoundary) String() string {
	switch pb {
	case PruneBelow:
		return "below"
	case PruneAtOrBelow:
		return "at-or-below"
	}
	return fmt.Sprintf("PruneBoundary(%d)", int(pb))
}

// ColorMode controls coloring of tree diagrams.
type ColorMode int

const (
	// ColorAuto colors diagrams only if they are written to a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways colors diagrams unconditionally.
	ColorAlways
	// ColorNever suppresses colors.
	ColorNever
)

// Config configures the policies of a tree.
//
// The zero value is a valid configuration.
type Config struct {
	// TieBreak resolves ties in DeepestNode.
	TieBreak TieBreak
	// Prune is the threshold policy of PruneK.
	Prune PruneBoundary
	// Context is the display-width context for diagram labels. If nil,
	// uax11.LatinContext is used.
	Context *uax11.Context
	// Color controls coloring of diagrams.
	Color ColorMode
}

// DefaultConfig returns the configuration used by New and FromSlice.
func DefaultConfig() Config {
	return Config{}.normalized()
}

func (cfg Config) normalized() Config {
	if cfg.Context == nil {
		cfg.Context = uax11.LatinContext
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.TieBreak < TieGreatest || cfg.TieBreak > TieRightmost {
		return fmt.Errorf("%w: unknown tie-break policy %d", ErrInvalidConfig, cfg.TieBreak)
	}
	if cfg.Prune < PruneBelow || cfg.Prune > PruneAtOrBelow {
		return fmt.Errorf("%w: unknown prune boundary %d", ErrInvalidConfig, cfg.Prune)
	}
	if cfg.Color < ColorAuto || cfg.Color > ColorNever {
		return fmt.Errorf("%w: unknown color mode %d", ErrInvalidConfig, cfg.Color)
	}
	return nil
}
