package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// duration accepts Go duration strings ("750ms", "2s") in yaml.
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", s, err)
	}
	*d = duration(parsed)
	return nil
}

// Config drives the demo. All fields are optional; zero values fall back
// to defaults.
type Config struct {
	// Banner is the static text shown at the top of the screen.
	Banner string `yaml:"banner"`
	// TickInterval is how often the feed emits a line, e.g. "750ms".
	TickInterval duration `yaml:"tick_interval"`
	// Items populate the selectable list.
	Items []string `yaml:"items"`
}

func defaultConfig() Config {
	return Config{
		Banner:       "cascade demo: the feed updates in place, type and press Enter, Ctrl+C quits",
		TickInterval: duration(750 * time.Millisecond),
		Items:        []string{"alpha", "bravo", "charlie"},
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = duration(750 * time.Millisecond)
	}
	return cfg, nil
}
