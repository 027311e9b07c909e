// Package config loads the YAML configuration shared by the potnav CLI and
// the HTTP service. Library packages take plain options; only the outer
// surfaces read files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/potfield/descent"
	"github.com/katalvlaran/potfield/route"
	"github.com/katalvlaran/potfield/synth"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Upper bounds shared by the config file and per-request overrides.
const (
	MaxComplexity    = 1000
	MaxIterationsCap = 1_000_000
)

// Config is the top-level file layout.
type Config struct {
	Field  FieldConfig  `yaml:"field"`
	Search SearchConfig `yaml:"search"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// FieldConfig drives synthesis. Seed 0 means unseeded.
type FieldConfig struct {
	Size        int     `yaml:"size" validate:"gt=0,lte=4096"`
	Complexity  int     `yaml:"complexity" validate:"gte=0,lte=1000"`
	Seed        uint64  `yaml:"seed"`
	NoiseStdDev float64 `yaml:"noise_stddev" validate:"gte=0"`
	BlurSigma   float64 `yaml:"blur_sigma" validate:"gte=0,lte=100"`
	Border      string  `yaml:"border" validate:"oneof=reflect nearest wrap"`
}

// SearchConfig drives path searches.
type SearchConfig struct {
	Mode          string  `yaml:"mode" validate:"oneof=greedy astar"`
	MaxIterations int     `yaml:"max_iterations" validate:"gte=0,lte=1000000"`
	StallPolicy   string  `yaml:"stall_policy" validate:"oneof=continue stop"`
	StepWeight    float64 `yaml:"step_weight" validate:"gt=0"`
}

// ServerConfig drives the HTTP service.
type ServerConfig struct {
	Addr      string `yaml:"addr" validate:"required,hostname_port"`
	MaxFields int    `yaml:"max_fields" validate:"gt=0"`
	MaxSize   int    `yaml:"max_size" validate:"gt=0,lte=4096"`
}

// LogConfig drives the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Size:        synth.DefaultSize,
			Complexity:  synth.DefaultComplexity,
			NoiseStdDev: synth.DefaultNoiseStdDev,
			BlurSigma:   synth.DefaultBlurSigma,
			Border:      synth.Reflect.String(),
		},
		Search: SearchConfig{
			Mode:          "greedy",
			MaxIterations: descent.DefaultMaxIterations,
			StallPolicy:   descent.StallContinue.String(),
			StepWeight:    route.DefaultStepWeight,
		},
		Server: ServerConfig{
			Addr:      "127.0.0.1:8080",
			MaxFields: 16,
			MaxSize:   1024,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

var validate = validator.New()

// Validate checks struct tags and cross-field rules.
func (c Config) Validate() error {
	if err := check(c); err != nil {
		return err
	}
	if c.Field.Size > c.Server.MaxSize {
		return fmt.Errorf("%w: field.size %d exceeds server.max_size %d", ErrInvalidConfig, c.Field.Size, c.Server.MaxSize)
	}

	return nil
}

// Validate checks the field section on its own, e.g. after request overrides.
func (f FieldConfig) Validate() error { return check(f) }

// Validate checks the search section on its own, e.g. after request overrides.
func (s SearchConfig) Validate() error { return check(s) }

// check runs the struct tags of v and folds failures into ErrInvalidConfig.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}

// Parse decodes YAML over Default(), so omitted keys keep their defaults,
// then validates. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses path. An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// SynthOptions converts the field section into synth options. Seed 0 leaves
// the stream unseeded.
func (f FieldConfig) SynthOptions() ([]synth.Option, error) {
	border, err := synth.ParseBorder(f.Border)
	if err != nil {
		return nil, err
	}
	opts := []synth.Option{
		synth.WithNoiseStdDev(f.NoiseStdDev),
		synth.WithBlurSigma(f.BlurSigma),
		synth.WithBorder(border),
	}
	if f.Seed != 0 {
		opts = append(opts, synth.WithSeed(f.Seed))
	}

	return opts, nil
}

// DescentOptions converts the search section into descent options.
func (s SearchConfig) DescentOptions() ([]descent.Option, error) {
	policy, err := descent.ParseStallPolicy(s.StallPolicy)
	if err != nil {
		return nil, err
	}

	return []descent.Option{
		descent.WithMaxIterations(s.MaxIterations),
		descent.WithStallPolicy(policy),
	}, nil
}

// RouteOptions converts the search section into route options.
func (s SearchConfig) RouteOptions() []route.Option {
	return []route.Option{route.WithStepWeight(s.StepWeight)}
}
