package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/internal/logging"
)

// ErrInvalidProfile indicates a profile that decoded but holds unusable values.
var ErrInvalidProfile = errors.New("config: invalid profile")

// Profile is the decoded form of a run profile.
type Profile struct {
	Input      string `hcl:"input,optional"`
	Strategy   string `hcl:"strategy,optional"`
	Workers    int    `hcl:"workers,optional"`
	StepBudget int    `hcl:"step_budget,optional"`
	MaxDepth   int    `hcl:"max_depth,optional"`
	Log        *Log   `hcl:"log,block"`
}

// Log configures the application logger.
type Log struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Default returns the settings used when nothing else is configured.
func Default() Profile {
	return Profile{
		Strategy: climb.StrategyPerStart.String(),
		Workers:  1,
		Log:      &Log{Level: "info", Format: "text"},
	}
}

// Load parses and decodes the HCL file at path.
func Load(path string) (Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Profile{}, fmt.Errorf("config: failed to parse %s: %w", path, diags)
	}
	return decode(file.Body, path)
}

// Parse decodes an in-memory profile; filename is used in diagnostics only.
func Parse(src []byte, filename string) (Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Profile{}, fmt.Errorf("config: failed to parse %s: %w", filename, diags)
	}
	return decode(file.Body, filename)
}

func decode(body hcl.Body, filename string) (Profile, error) {
	var p Profile
	if diags := gohcl.DecodeBody(body, nil, &p); diags.HasErrors() {
		return Profile{}, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
	}
	return p, nil
}

// Merge returns base with every non-zero field of over applied on top.
func Merge(base, over Profile) Profile {
	out := base
	if over.Input != "" {
		out.Input = over.Input
	}
	if over.Strategy != "" {
		out.Strategy = over.Strategy
	}
	if over.Workers != 0 {
		out.Workers = over.Workers
	}
	if over.StepBudget != 0 {
		out.StepBudget = over.StepBudget
	}
	if over.MaxDepth != 0 {
		out.MaxDepth = over.MaxDepth
	}
	if over.Log != nil {
		merged := Log{}
		if base.Log != nil {
			merged = *base.Log
		}
		if over.Log.Level != "" {
			merged.Level = over.Log.Level
		}
		if over.Log.Format != "" {
			merged.Format = over.Log.Format
		}
		out.Log = &merged
	}
	return out
}

// Validate reports every unusable value, joined.
func (p Profile) Validate() error {
	var errs []error
	if _, err := climb.ParseStrategy(p.Strategy); err != nil {
		errs = append(errs, err)
	}
	if p.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be non-negative, got %d", p.Workers))
	}
	if p.StepBudget < 0 {
		errs = append(errs, fmt.Errorf("step_budget must be non-negative, got %d", p.StepBudget))
	}
	if p.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max_depth must be non-negative, got %d", p.MaxDepth))
	}
	if p.Log != nil {
		if _, err := logging.ParseLevel(p.Log.Level); err != nil {
			errs = append(errs, err)
		}
		if p.Log.Format != "" && !logging.ValidFormat(p.Log.Format) {
			errs = append(errs, fmt.Errorf("log format must be text or json, got %q", p.Log.Format))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidProfile, errors.Join(errs...))
}

// Options translates the search settings into climb options.
// The profile must have passed Validate.
func (p Profile) Options() []climb.Option {
	strategy, _ := climb.ParseStrategy(p.Strategy)
	return []climb.Option{
		climb.WithStrategy(strategy),
		climb.WithWorkers(p.Workers),
		climb.WithStepBudget(p.StepBudget),
		climb.WithMaxDepth(p.MaxDepth),
	}
}
