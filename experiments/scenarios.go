package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"pyl/searcher"
)

// DefaultScenarios are the standing regression positions, searched with
// default options on the February 1985 board.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Name: "three earned spins behind the leader", Expect: "play",
			Players: []PlayerConfig{{}, {Score: 2000, Earned: 3}, {Score: 3500, Earned: 2}},
		},
		{
			Name: "third place must play", Expect: "play",
			Players: []PlayerConfig{{Earned: 3, Whammies: 2}, {Score: 2000, Earned: 2}, {Score: 3500, Earned: 1}},
		},
		{
			Name: "mid game three way",
			Players: []PlayerConfig{{Score: 2000}, {Score: 3000, Earned: 3}, {Score: 6000}},
		},
		{
			Name: "deep spin stack against whammied opponents",
			Players: []PlayerConfig{{}, {Score: 1000, Earned: 10, Whammies: 3}, {Whammies: 3}},
		},
		{
			Name: "big lead with two spins",
			Players: []PlayerConfig{{}, {Score: 10000, Earned: 2}, {Score: 7000, Earned: 1}},
		},
		{
			Name: "big lead final spin",
			Players: []PlayerConfig{{}, {Score: 10000, Earned: 1}, {Score: 7000}},
		},
	}
}

// RunScenarios searches each scenario in turn and reports any whose
// converged decision differs from its expectation.
func RunScenarios(scenarios []Scenario) error {
	for _, sc := range scenarios {
		node, search, err := runScenario(sc)
		if err != nil {
			return err
		}

		decision := node.Decision()
		result := search.Result()
		log.Info().Msgf("%s: %v play %v pass %v cache %d",
			sc.Name, decision, result.PlayWin, result.PassWin, search.Cache().Size())

		if sc.Expect != "" && decision.String() != sc.Expect {
			return fmt.Errorf("scenario %q decided %v, expected %s", sc.Name, decision, sc.Expect)
		}
	}
	return nil
}

func runScenario(sc Scenario) (*searcher.DecideNode, *searcher.Search, error) {
	board, err := sc.BoardOperator()
	if err != nil {
		return nil, nil, err
	}
	state, err := sc.State()
	if err != nil {
		return nil, nil, err
	}
	search := searcher.NewSearch(board, sc.SearchOptions()...)
	node := search.Run(state)
	return node, search, nil
}
