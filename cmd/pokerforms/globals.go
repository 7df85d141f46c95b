package main

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/pokerforms/cmd/pokerforms/shared"
	"github.com/lox/pokerforms/internal/config"
	"github.com/lox/pokerforms/internal/randutil"
	"github.com/lox/pokerforms/scenario"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `help:"HCL config file (default: $POKERFORMS_CONFIG or pokerforms.hcl)" type:"path"`
	Variant  string `short:"V" help:"Named generator variant (legacy, flop, random or one from the config file)"`
	LogLevel string `help:"Log level (debug, info, warn, error)"`
	EnvFile  string `name:"env-file" help:"dotenv file to load" default:".env"`
}

// runtime is everything a command needs after flags, environment and config
// file have been merged. Flags win over the environment, which wins over the file.
type runtime struct {
	cfg     *config.Config
	variant config.VariantConfig
	logger  *log.Logger
	seed    *int64
	clock   quartz.Clock
}

func (g *Globals) load() (*runtime, error) {
	env, err := config.LoadEnv(g.EnvFile)
	if err != nil {
		return nil, err
	}

	path := env.ConfigFile
	if g.Config != "" {
		path = g.Config
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := env.Apply(cfg); err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}

	logger, err := shared.SetupLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	variant, err := cfg.Variant(g.Variant)
	if err != nil {
		return nil, err
	}
	logger.Debug("Configuration loaded", "file", path, "variant", variant.Name)

	return &runtime{
		cfg:     cfg,
		variant: variant,
		logger:  logger,
		seed:    env.Seed,
		clock:   quartz.NewReal(),
	}, nil
}

// scenarioConfig returns the variant's generator settings, with the board size
// overridden when boardSize is not empty.
func (r *runtime) scenarioConfig(boardSize string) (scenario.Config, error) {
	sc, err := r.variant.ScenarioConfig()
	if err != nil {
		return scenario.Config{}, err
	}
	if boardSize != "" {
		if sc.BoardSize, err = scenario.ParseBoardSize(boardSize); err != nil {
			return scenario.Config{}, err
		}
	}
	return sc, sc.Validate()
}

func (r *runtime) generator(boardSize string) (*scenario.Generator, error) {
	sc, err := r.scenarioConfig(boardSize)
	if err != nil {
		return nil, err
	}
	return scenario.New(sc, scenario.WithLogger(r.logger))
}

// resolveSeed prefers the flag, then POKERFORMS_SEED, then the clock. The seed
// is always logged so a run can be replayed.
func (r *runtime) resolveSeed(flag *int64) int64 {
	var seed int64
	switch {
	case flag != nil:
		seed = *flag
	case r.seed != nil:
		seed = *r.seed
	default:
		_, seed = randutil.NewFromClock(r.clock)
	}
	r.logger.Debug("Using seed", "seed", seed)
	return seed
}
