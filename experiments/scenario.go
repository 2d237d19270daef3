package experiments

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pyl/game"
	"pyl/searcher"
)

// Scenario describes one search query declaratively: the board, the
// starting players, and any option overrides.
type Scenario struct {
	Name    string         `yaml:"name"`
	Board   string         `yaml:"board"`
	Players []PlayerConfig `yaml:"players"`
	Options OptionsConfig  `yaml:"options"`
	// Expect optionally names the decision the scenario must converge to
	// ("play" or "pass"); used as a regression check.
	Expect string `yaml:"expect"`
}

type PlayerConfig struct {
	Score    int `yaml:"score"`
	Earned   int `yaml:"earned"`
	Passed   int `yaml:"passed"`
	Whammies int `yaml:"whammies"`
}

type OptionsConfig struct {
	MaxUncertainty float64 `yaml:"max_uncertainty"`
	MaxLead        int     `yaml:"max_lead"`
	MaxDepth       int     `yaml:"max_depth"`
	MaxMergedSpins int     `yaml:"max_merged_spins"`
	PassWhenThird  bool    `yaml:"pass_when_third"`
	NoSpinMerge    bool    `yaml:"no_spin_merge"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads a yaml scenario file.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s defines no scenarios", path)
	}
	return file.Scenarios, nil
}

// State builds the initial game state described by the scenario.
func (sc Scenario) State() (game.State, error) {
	if len(sc.Players) != game.NumPlayers {
		return game.State{}, fmt.Errorf("scenario %q needs exactly %d players, got %d",
			sc.Name, game.NumPlayers, len(sc.Players))
	}
	var state game.State
	for i, p := range sc.Players {
		state.Players[i] = game.Player{
			Score:    uint16(p.Score),
			Earned:   uint8(p.Earned),
			Passed:   uint8(p.Passed),
			Whammies: uint8(p.Whammies),
		}
	}
	return state, nil
}

// BoardOperator resolves the scenario's board name, defaulting to the
// February 1985 board.
func (sc Scenario) BoardOperator() (game.SpinOperator, error) {
	switch sc.Board {
	case "", "feb85":
		return game.NewFeb85Board(), nil
	case "uniform":
		return game.NewUniformBoard(), nil
	case "test":
		return game.NewTestBoard(), nil
	default:
		return game.SpinOperator{}, fmt.Errorf("unknown board %q", sc.Board)
	}
}

// SearchOptions converts the overrides into searcher options.
func (sc Scenario) SearchOptions() []searcher.Option {
	options := []searcher.Option{searcher.WithMetrics()}
	cfg := sc.Options
	if cfg.MaxUncertainty > 0 {
		options = append(options, searcher.WithMaxUncertainty(game.Prob(cfg.MaxUncertainty)))
	}
	if cfg.MaxLead != 0 {
		options = append(options, searcher.WithMaxLead(cfg.MaxLead))
	}
	if cfg.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(cfg.MaxDepth))
	}
	if cfg.MaxMergedSpins > 0 {
		options = append(options, searcher.WithMaxMergedSpins(cfg.MaxMergedSpins))
	}
	if cfg.PassWhenThird {
		options = append(options, searcher.WithPassWhenThird())
	}
	if cfg.NoSpinMerge {
		options = append(options, searcher.WithoutPassedSpinMerge())
	}
	return options
}
