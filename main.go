package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pyl/experiments"
)

func main() {
	scenarioPath := flag.String("scenarios", "", "yaml scenario file to run instead of the built-in scenarios")
	experiment := flag.String("experiment", "", "sweep experiment to run: lead or spins")
	verbose := flag.Bool("v", false, "log per-depth search progress")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	var err error
	switch *experiment {
	case "lead":
		err = experiments.RunLeadSweep()
	case "spins":
		err = experiments.RunSpinsSweep()
	case "":
		err = runScenarios(*scenarioPath)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func runScenarios(path string) error {
	scenarios := experiments.DefaultScenarios()
	if path != "" {
		var err error
		scenarios, err = experiments.LoadScenarios(path)
		if err != nil {
			return err
		}
	}
	return experiments.RunScenarios(scenarios)
}
