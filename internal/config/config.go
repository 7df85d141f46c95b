// Package config loads generator variants from HCL files and environment overrides.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/pokerforms/scenario"
)

// Config is the complete file configuration.
type Config struct {
	LogLevel       string          `hcl:"log_level,optional"`
	DefaultVariant string          `hcl:"default_variant,optional"`
	Variants       []VariantConfig `hcl:"variant,block"`
}

// VariantConfig is one named generation policy. The divergent randomizers the
// site shipped are expressed as variants rather than one canonical behavior.
type VariantConfig struct {
	Name                string   `hcl:"name,label"`
	BoardSize           string   `hcl:"board_size,optional"`
	HoleCards           int      `hcl:"hole_cards,optional"`
	SmallBlind          int      `hcl:"small_blind,optional"`
	BigBlind            int      `hcl:"big_blind,optional"`
	StackMin            int      `hcl:"stack_min,optional"`
	StackMax            int      `hcl:"stack_max,optional"`
	BlindPosting        string   `hcl:"blind_posting,optional"`
	PotMode             string   `hcl:"pot_mode,optional"`
	PotMin              int      `hcl:"pot_min,optional"`
	PotMax              int      `hcl:"pot_max,optional"`
	BetCheckProbability *float64 `hcl:"bet_check_probability,optional"`
	RandomizeTable      bool     `hcl:"randomize_table,optional"`
}

func float(v float64) *float64 { return &v }

// BuiltinVariants returns the variants shipped without a config file.
//
//	legacy: the original form randomizer (river board, stacks 100..499, pot 10..59, always checks)
//	flop:   flop-only board with the pot derived from a raised and called preflop
//	random: turn/river variant with random board size and a 66% check rate
func BuiltinVariants() []VariantConfig {
	return []VariantConfig{
		{
			Name:                "legacy",
			BoardSize:           "5",
			StackMin:            100,
			StackMax:            499,
			PotMode:             string(scenario.PotRandom),
			PotMin:              10,
			PotMax:              59,
			BetCheckProbability: float(1),
		},
		{
			Name:                "flop",
			BoardSize:           "3",
			StackMin:            200,
			StackMax:            1000,
			BlindPosting:        string(scenario.PostBySeat),
			PotMode:             string(scenario.PotPreflopRaise),
			BetCheckProbability: float(0.66),
		},
		{
			Name:                "random",
			BoardSize:           "random",
			StackMin:            200,
			StackMax:            1000,
			BlindPosting:        string(scenario.PostCoinFlip),
			PotMode:             string(scenario.PotRandom),
			PotMin:              10,
			PotMax:              100,
			BetCheckProbability: float(0.66),
			RandomizeTable:      true,
		},
	}
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	cfg := &Config{
		LogLevel:       "info",
		DefaultVariant: "random",
		Variants:       BuiltinVariants(),
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields DefaultConfig.
// Built-in variants remain available unless the file redefines them by name.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is used only in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defined := make(map[string]bool, len(cfg.Variants))
	for _, v := range cfg.Variants {
		defined[v.Name] = true
	}
	for _, v := range BuiltinVariants() {
		if !defined[v.Name] {
			cfg.Variants = append(cfg.Variants, v)
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.DefaultVariant == "" {
		cfg.DefaultVariant = "random"
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills unset variant fields from scenario.DefaultConfig.
func (c *Config) applyDefaults() {
	def := scenario.DefaultConfig()
	for i := range c.Variants {
		v := &c.Variants[i]
		if v.BoardSize == "" {
			v.BoardSize = def.BoardSize.String()
		}
		if v.HoleCards == 0 {
			v.HoleCards = def.HoleCards
		}
		if v.SmallBlind == 0 {
			v.SmallBlind = def.SmallBlind
		}
		if v.BigBlind == 0 {
			v.BigBlind = def.BigBlind
		}
		if v.StackMin == 0 && v.StackMax == 0 {
			v.StackMin, v.StackMax = def.StackMin, def.StackMax
		}
		if v.BlindPosting == "" {
			v.BlindPosting = string(def.BlindPosting)
		}
		if v.PotMode == "" {
			v.PotMode = string(def.PotMode)
		}
		if v.PotMin == 0 && v.PotMax == 0 {
			v.PotMin, v.PotMax = def.PotMin, def.PotMax
		}
		if v.BetCheckProbability == nil {
			v.BetCheckProbability = float(def.BetCheckProbability)
		}
	}
}

// Validate checks every variant and the default variant reference.
func (c *Config) Validate() error {
	if len(c.Variants) == 0 {
		return fmt.Errorf("at least one variant must be configured")
	}
	seen := make(map[string]bool, len(c.Variants))
	for _, v := range c.Variants {
		if seen[v.Name] {
			return fmt.Errorf("duplicate variant %q", v.Name)
		}
		seen[v.Name] = true
		if _, err := v.ScenarioConfig(); err != nil {
			return fmt.Errorf("variant %s: %w", v.Name, err)
		}
	}
	if !seen[c.DefaultVariant] {
		return fmt.Errorf("default variant %q is not defined", c.DefaultVariant)
	}
	return nil
}

// Variant returns the named variant, or the default variant when name is empty.
func (c *Config) Variant(name string) (VariantConfig, error) {
	if name == "" {
		name = c.DefaultVariant
	}
	for _, v := range c.Variants {
		if v.Name == name {
			return v, nil
		}
	}
	return VariantConfig{}, fmt.Errorf("unknown variant %q (available: %v)", name, c.VariantNames())
}

// VariantNames returns the configured variant names in sorted order.
func (c *Config) VariantNames() []string {
	names := make([]string, 0, len(c.Variants))
	for _, v := range c.Variants {
		names = append(names, v.Name)
	}
	sort.Strings(names)
	return names
}

// ScenarioConfig converts the variant into a validated generator configuration.
func (v VariantConfig) ScenarioConfig() (scenario.Config, error) {
	board, err := scenario.ParseBoardSize(v.BoardSize)
	if err != nil {
		return scenario.Config{}, err
	}
	potMode, err := scenario.ParsePotMode(v.PotMode)
	if err != nil {
		return scenario.Config{}, err
	}
	posting, err := scenario.ParseBlindPosting(v.BlindPosting)
	if err != nil {
		return scenario.Config{}, err
	}

	cfg := scenario.Config{
		BoardSize:      board,
		HoleCards:      v.HoleCards,
		SmallBlind:     v.SmallBlind,
		BigBlind:       v.BigBlind,
		StackMin:       v.StackMin,
		StackMax:       v.StackMax,
		BlindPosting:   posting,
		PotMode:        potMode,
		PotMin:         v.PotMin,
		PotMax:         v.PotMax,
		RandomizeTable: v.RandomizeTable,
	}
	if v.BetCheckProbability != nil {
		cfg.BetCheckProbability = *v.BetCheckProbability
	}
	if err := cfg.Validate(); err != nil {
		return scenario.Config{}, err
	}
	return cfg, nil
}
