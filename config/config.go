package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type SimulatorConfig struct {
	MarketDataFile      string `yaml:"market_data_file"`
	OrdersPerInstrument int    `yaml:"orders_per_instrument"`
	Seed                int64  `yaml:"seed"`
}

type AppConfig struct {
	ServiceName string           `yaml:"service_name"`
	LogLevel    string           `yaml:"log_level"`
	Simulator   *SimulatorConfig `yaml:"simulator"`
}

// Load load config from file and environment variables.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	fields := []interface{}{
		"func",
		"config.readFromFile",
		"filePath",
		filePath,
	}

	sugar := zap.S().With(fields...)

	sugar.Debug("Load config...")
	zap.S().Debugf("CONFIG_FILE=%v", filePath)

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	cfg := &AppConfig{}

	err = yaml.Unmarshal(configBytes, cfg)
	if err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	if cfg.Simulator == nil {
		cfg.Simulator = &SimulatorConfig{}
	}
	if cfg.Simulator.OrdersPerInstrument <= 0 {
		cfg.Simulator.OrdersPerInstrument = 10
	}
	if cfg.Simulator.MarketDataFile == "" {
		cfg.Simulator.MarketDataFile = "./config/marketdata.yml"
	}

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}
