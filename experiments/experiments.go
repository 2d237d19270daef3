package experiments

import (
	"github.com/rs/zerolog/log"

	"pyl/experiments/metrics"
	"pyl/game"
	"pyl/searcher"
)

// The sweeps below re-run one search per parameter value against the same
// Search instance, so resolved subtrees carry over between data points.

// RunLeadSweep varies the up player's lead over a 6000-point opponent from
// -5000 to +5000 and records where the decision flips from play to pass.
func RunLeadSweep() error {
	const baseline = 6000
	board := game.NewFeb85Board()
	search := searcher.NewSearch(board,
		searcher.WithMaxUncertainty(0.01),
		searcher.WithMetrics(),
	)

	records := []metrics.SweepRecord{}
	for lead := -5000; lead <= 5000; lead += 250 {
		state := game.State{Players: [game.NumPlayers]game.Player{
			{},
			{Score: uint16(baseline + lead), Earned: 1},
			{Score: baseline},
		}}
		node := search.Run(state)
		records = append(records, record(lead, node, search))
		logSweepPoint("lead", lead, node, search)
	}

	writer, err := metrics.NewWriter("lead_sweep")
	if err != nil {
		return err
	}
	return writer.WriteSweepRecords("lead", records)
}

// RunSpinsSweep varies the up player's earned spins from 1 to 12 for a
// fixed 8000-versus-3000 position.
func RunSpinsSweep() error {
	board := game.NewFeb85Board()
	search := searcher.NewSearch(board,
		searcher.WithMaxUncertainty(0.01),
		searcher.WithMetrics(),
	)

	records := []metrics.SweepRecord{}
	for spins := 1; spins <= 12; spins++ {
		state := game.State{Players: [game.NumPlayers]game.Player{
			{},
			{Score: 8000, Earned: uint8(spins)},
			{Score: 3000},
		}}
		node := search.Run(state)
		records = append(records, record(spins, node, search))
		logSweepPoint("spins", spins, node, search)
	}

	writer, err := metrics.NewWriter("spins_sweep")
	if err != nil {
		return err
	}
	return writer.WriteSweepRecords("spins", records)
}

func record(param int, node *searcher.DecideNode, search *searcher.Search) metrics.SweepRecord {
	result := search.Result()
	metric := search.Metric()
	return metrics.SweepRecord{
		Param:     param,
		Decision:  node.Decision().String(),
		PlayMin:   float64(result.PlayWin.Min()),
		PlayMax:   float64(result.PlayWin.Max()),
		PassMin:   float64(result.PassWin.Min()),
		PassMax:   float64(result.PassWin.Max()),
		Depths:    len(metric.Iterations),
		CacheSize: search.Cache().Size(),
		Duration:  metric.Duration,
	}
}

func logSweepPoint(param string, value int, node *searcher.DecideNode, search *searcher.Search) {
	result := search.Result()
	log.Info().Msgf("%s: %5d %v play %v pass %v",
		param, value, node.Decision(), result.PlayWin, result.PassWin)
}
