package twbmeta

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/output"
)

// LoadConfigFile loads run options from a YAML file.
func LoadConfigFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML data into Options. Missing keys take their defaults.
func ParseConfig(data []byte) (Options, error) {
	var opts Options

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := opts.applyDefaults(); err != nil {
		return Options{}, err
	}

	return opts, nil
}

// applyDefaults fills in default values and normalizes the options.
func (o *Options) applyDefaults() error {
	defaults := DefaultOptions()

	if o.Format == "" {
		o.Format = defaults.Format
	}
	format, err := output.ParseFormat(string(o.Format))
	if err != nil {
		return err
	}
	o.Format = format

	if len(o.Extensions) == 0 {
		o.Extensions = defaults.Extensions
	}
	for i, ext := range o.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		o.Extensions[i] = ext
	}

	if o.Workers < 1 {
		o.Workers = defaults.Workers
	}
	if o.Delimiter == "" {
		o.Delimiter = defaults.Delimiter
	}
	if len([]rune(o.Delimiter)) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", o.Delimiter)
	}
	if o.SheetName == "" {
		o.SheetName = defaults.SheetName
	}

	return nil
}
