package marketdata

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Feed holds per-instrument intraday reference prices, used only to
// synthesize realistic test orders.
type Feed struct {
	series map[string][]float64
}

type feedFile struct {
	Instruments map[string]map[string]float64 `yaml:"instruments"`
}

// Load reads a YAML market data file mapping instrument symbols to
// time-of-day price points. Environment variables in the file are expanded
// before parsing.
func Load(filePath string) (*Feed, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	raw = []byte(os.ExpandEnv(string(raw)))

	var ff feedFile
	if err := yaml.Unmarshal(raw, &ff); err != nil {
		return nil, err
	}
	if len(ff.Instruments) == 0 {
		return nil, fmt.Errorf("market data file %s has no instruments", filePath)
	}

	series := make(map[string][]float64, len(ff.Instruments))
	for symbol, points := range ff.Instruments {
		times := make([]string, 0, len(points))
		for t := range points {
			times = append(times, t)
		}
		sort.Strings(times)

		prices := make([]float64, 0, len(times))
		for _, t := range times {
			prices = append(prices, points[t])
		}
		series[strings.ToUpper(symbol)] = prices
	}

	return &Feed{series: series}, nil
}

// Instruments returns the known symbols in sorted order.
func (f *Feed) Instruments() []string {
	out := make([]string, 0, len(f.series))
	for symbol := range f.series {
		out = append(out, symbol)
	}
	sort.Strings(out)
	return out
}

// Prices returns the reference price series for an instrument, nil if the
// instrument is not in the feed. Lookup is case-insensitive.
func (f *Feed) Prices(instrument string) []float64 {
	return f.series[strings.ToUpper(instrument)]
}
