package report

import (
	"fmt"

	"github.com/sgostarter/libchart/chart"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFileName   = "report.html"
	DefaultTitle      = "Backtest Report"
	DefaultSeriesName = "Portfolio"

	ReturnsLabel = "Return (%)"
	ValuesLabel  = "Value ($)"
)

// Config drives a report build. Chart holds the options shared by every chart
// of the page.
type Config struct {
	Root           string        `yaml:"root"`
	FileName       string        `yaml:"fileName"`
	Title          string        `yaml:"title"`
	SeriesName     string        `yaml:"seriesName"`
	ReturnsLabel   string        `yaml:"returnsLabel"`
	ValuesLabel    string        `yaml:"valuesLabel"`
	BreakdownLabel string        `yaml:"breakdownLabel"`
	Chart          chart.Options `yaml:"chart"`
	// BreakdownPalette colors the per-holding lines of the breakdown chart.
	BreakdownPalette []string `yaml:"breakdownPalette,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		FileName:       DefaultFileName,
		Title:          DefaultTitle,
		SeriesName:     DefaultSeriesName,
		ReturnsLabel:   ReturnsLabel,
		ValuesLabel:    ValuesLabel,
		BreakdownLabel: ValuesLabel,
		Chart:          chart.DefaultOptions(),
	}
}

func ParseConfig(d []byte) (cfg Config, err error) {
	cfg = DefaultConfig()

	err = yaml.Unmarshal(d, &cfg)
	if err != nil {
		err = fmt.Errorf("%w: %v", chart.ErrInvalidConfiguration, err)

		return
	}

	err = cfg.Validate()

	return
}

func (cfg *Config) Validate() error {
	if cfg.FileName == "" {
		return fmt.Errorf("%w: empty report file name", chart.ErrInvalidConfiguration)
	}

	return cfg.Chart.Validate()
}
