package config // CLI configuration file

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Options holds the defaults a YAML file may supply for the stats tool.
// Command-line flags that were explicitly set always win over these values.
type Options struct {
	ColorNames    string  `yaml:"color_names"`
	SkipMalformed bool    `yaml:"skip_malformed"`
	OutPrefix     string  `yaml:"out_prefix"`
	CSV           bool    `yaml:"csv"`
	PerColor      bool    `yaml:"per_color"`
	Plot          bool    `yaml:"plot"`
	Compression   float64 `yaml:"tdigest_compression"`
}

// DefaultOptions returns the values used when neither a config file nor a flag sets them.
func DefaultOptions() Options {
	return Options{
		OutPrefix:   "pa_stats_report",
		Compression: 100,
	}
}

// Load reads a YAML defaults file on top of DefaultOptions.
// An empty path returns the defaults unchanged.
func Load(path string) (Options, error) {
	opts := DefaultOptions()
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := opts.Validate(); err != nil {
		return opts, errors.Wrapf(err, "config %s", path)
	}
	return opts, nil
}

// Validate rejects values the stats tool cannot run with.
func (o Options) Validate() error {
	if o.OutPrefix == "" {
		return errors.New("out_prefix must not be empty")
	}
	if o.Compression <= 0 {
		return errors.Errorf("tdigest_compression must be positive, got %g", o.Compression)
	}
	return nil
}
