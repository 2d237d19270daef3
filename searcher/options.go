package searcher

import "pyl/game"

// SearchOptions bounds the search. The zero value is not useful; use
// DefaultSearchOptions or NewSearch with Option overrides.
type SearchOptions struct {
	// MaxUncertainty is the largest acceptable payoff uncertainty for a
	// branch to count as resolved.
	MaxUncertainty game.Prob
	// MaxLead suppresses the play branch once the up player leads by more
	// than this; 0 disables the cutoff.
	MaxLead int
	// MaxDepth caps the iterative-deepening schedule.
	MaxDepth int
	// MaxMergedSpins caps how many passed spins are resolved as one
	// pre-multiplied operator.
	MaxMergedSpins int
	// AlwaysSpinThirdPlace suppresses the pass branch when the up player is
	// strictly behind both opponents.
	AlwaysSpinThirdPlace bool
	// MergePassedSpins enables resolving a run of passed spins in one step.
	MergePassedSpins bool
}

func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		MaxUncertainty:       0.03,
		MaxLead:              15000,
		MaxDepth:             50,
		MaxMergedSpins:       5,
		AlwaysSpinThirdPlace: true,
		MergePassedSpins:     true,
	}
}

type Option func(s *Search)

func WithMaxUncertainty(u game.Prob) Option {
	return func(s *Search) {
		if u > 0 {
			s.options.MaxUncertainty = u
		}
	}
}

func WithMaxLead(lead int) Option {
	return func(s *Search) {
		s.options.MaxLead = lead
	}
}

func WithMaxDepth(depth int) Option {
	return func(s *Search) {
		if depth > 0 {
			s.options.MaxDepth = depth
		}
	}
}

func WithMaxMergedSpins(count int) Option {
	return func(s *Search) {
		if count > 0 {
			s.options.MaxMergedSpins = count
		}
	}
}

func WithoutPassedSpinMerge() Option {
	return func(s *Search) {
		s.options.MergePassedSpins = false
	}
}

// WithPassWhenThird allows the pass branch even when the up player is in
// third place.
func WithPassWhenThird() Option {
	return func(s *Search) {
		s.options.AlwaysSpinThirdPlace = false
	}
}

func WithOptions(options SearchOptions) Option {
	return func(s *Search) {
		s.options = options
	}
}

func WithMetrics() Option {
	return func(s *Search) {
		s.metrics = NewCollector()
	}
}
