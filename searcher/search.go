package searcher

import (
	"github.com/rs/zerolog/log"

	"pyl/game"
)

// SearchResult holds the win intervals for the up player on the root's two
// branches. Before a branch resolves, its interval spans [0, 1).
type SearchResult struct {
	PlayWin Interval[game.Prob]
	PassWin Interval[game.Prob]
}

func newSearchResult() SearchResult {
	return SearchResult{
		PlayWin: NewInterval[game.Prob](0, 1),
		PassWin: NewInterval[game.Prob](0, 1),
	}
}

// Search evaluates play/pass decisions for one board under one set of
// options. The node cache persists across Run calls, so repeated queries
// against the same board share resolved subtrees.
type Search struct {
	spinOps []game.SpinOperator
	passOp  game.PassOperator
	cache   *NodeCache
	options SearchOptions
	result  SearchResult
	metrics Collector
	metric  SearchMetric
}

// NewSearch precomputes the powers of the board operator used by the
// passed-spin merge, up to MaxMergedSpins consecutive spins.
func NewSearch(board game.SpinOperator, options ...Option) *Search {
	s := &Search{
		options: DefaultSearchOptions(),
		result:  newSearchResult(),
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}

	s.spinOps = make([]game.SpinOperator, s.options.MaxMergedSpins+1)
	s.spinOps[0] = board // index by spin count; 0 unused
	s.spinOps[1] = board
	for i := 2; i <= s.options.MaxMergedSpins; i++ {
		s.spinOps[i] = board.Compose(s.spinOps[i-1])
	}
	s.cache = NewNodeCache()
	return s
}

func (s *Search) Options() SearchOptions { return s.options }

// Result holds the root branch intervals from the most recent Run.
func (s *Search) Result() SearchResult { return s.result }

// Metric holds the iteration metrics from the most recent Run.
func (s *Search) Metric() SearchMetric { return s.metric }

// Cache exposes the node cache for diagnostics.
func (s *Search) Cache() *NodeCache { return s.cache }

// Run searches from init until the root decision converges or MaxDepth is
// reached, and returns the root node either way. Callers must check the
// root's Decision and uncertainty before trusting a non-converged result.
//
// Each pass re-scans the graph to an increasing depth budget. Between
// passes every node's visited marker is cleared but payoffs are retained,
// so a deeper pass extends unresolved branches without re-deriving resolved
// ones.
func (s *Search) Run(init game.State) *DecideNode {
	init.ChangePlayer()
	log.Info().Msgf("searching %v", init)
	root := s.cache.DecideNode(init)
	s.result = newSearchResult()
	s.metrics.Start(s.options)

	solved := false
	for depth := 4; depth < s.options.MaxDepth && !solved; depth += deepen(depth) {
		root.scan(s, depth)
		payoff := root.Payoff()
		solved = root.solved(&s.result, s.options)

		log.Debug().Msgf("depth %d", depth)
		if root.ifPlay != nil {
			log.Debug().Msgf("   play: %v -> %v", root.ifPlay.Payoff(), s.result.PlayWin)
		}
		if root.ifPass != nil {
			log.Debug().Msgf("   pass: %v -> %v", root.ifPass.Payoff(), s.result.PassWin)
		}
		if solved {
			log.Debug().Msgf("   solved: %v : %v", root.Decision(), payoff)
		}
		log.Debug().Msgf("   cache: total %d, final %d", s.cache.Size(), s.cache.FinalSpinNodes())

		s.metrics.AddIteration(IterationMetric{
			Depth:       depth,
			CacheSize:   s.cache.Size(),
			Uncertainty: payoff.Uncertainty(),
		})
		s.cache.ForEach(func(n Node) { n.invalidate() })
	}
	s.metric = s.metrics.Complete(solved)
	return root
}

// deepen is the iterative-deepening schedule: coarse steps while shallow,
// finer ones once the graph is large.
func deepen(depth int) int {
	if depth < 32 {
		return 8
	}
	return 4
}
