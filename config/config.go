package config

import (
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bikeshare/domain/entities/city"
	"bikeshare/utils"
)

var ErrInvalidConfig = errors.New("invalid explorer config")

//go:embed config.yaml
var defaultConfigFile []byte

// CityConfig source files of a city
// + File: trips csv, relative to DataDir unless absolute
// + HasDemographics: the trips file has Gender and Birth Year columns
// + StationsFile: optional csv with name,latitude,longitude of each station
type CityConfig struct {
	File            string `yaml:"file"`
	HasDemographics bool   `yaml:"has_demographics"`
	StationsFile    string `yaml:"stations_file"`
}

type ExplorerConfig struct {
	DataDir         string                `yaml:"data_dir"`
	PageSize        int                   `yaml:"page_size"`
	MaxAttempts     int                   `yaml:"max_attempts"`
	TimestampLayout string                `yaml:"timestamp_layout"`
	Cities          map[string]CityConfig `yaml:"cities"`
}

// LoadConfig reads the config from configFilepath. An empty path loads the default config
func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	configFile := defaultConfigFile
	if configFilepath != "" {
		var err error
		configFile, err = utils.GetConfigFile(configFilepath)
		if err != nil {
			return nil, err
		}
	}

	return ParseConfig(configFile)
}

// ParseConfig parses and validates a YAML config
func ParseConfig(configFile []byte) (*ExplorerConfig, error) {
	var explorerConfig ExplorerConfig
	err := yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	if explorerConfig.TimestampLayout == "" {
		explorerConfig.TimestampLayout = "2006-01-02 15:04:05"
	}

	if err = explorerConfig.validate(); err != nil {
		return nil, err
	}
	return &explorerConfig, nil
}

func (ec *ExplorerConfig) validate() error {
	if ec.PageSize <= 0 {
		return fmt.Errorf("%w: page_size must be greater than 0, got %v", ErrInvalidConfig, ec.PageSize)
	}

	if ec.MaxAttempts < 0 {
		return fmt.Errorf("%w: max_attempts cannot be negative, got %v", ErrInvalidConfig, ec.MaxAttempts)
	}

	for _, c := range city.All() {
		cityConfig, ok := ec.Cities[c.String()]
		if !ok {
			return fmt.Errorf("%w: missing config for city %s", ErrInvalidConfig, c)
		}
		if cityConfig.File == "" {
			return fmt.Errorf("%w: missing file for city %s", ErrInvalidConfig, c)
		}
		if cityConfig.HasDemographics && !c.HasDemographics() {
			return fmt.Errorf("%w: city %s has no gender or birth year data", ErrInvalidConfig, c)
		}
	}

	for name := range ec.Cities {
		if !utils.ContainsString(name, city.Names()) {
			return fmt.Errorf("%w: %s", city.ErrUnknownCity, name)
		}
	}
	return nil
}

// GetCityConfig returns the config of the given city
func (ec *ExplorerConfig) GetCityConfig(c city.City) (CityConfig, error) {
	cityConfig, ok := ec.Cities[c.String()]
	if !ok {
		return CityConfig{}, fmt.Errorf("%w: %s", city.ErrUnknownCity, c)
	}
	return cityConfig, nil
}

// GetTripsFilepath returns the path of the trips file of the given city
func (ec *ExplorerConfig) GetTripsFilepath(c city.City) (string, error) {
	cityConfig, err := ec.GetCityConfig(c)
	if err != nil {
		return "", err
	}
	return ec.resolve(cityConfig.File), nil
}

// GetStationsFilepath returns the path of the stations file of the given city.
// The bool is false if the city has no stations file
func (ec *ExplorerConfig) GetStationsFilepath(c city.City) (string, bool) {
	cityConfig, err := ec.GetCityConfig(c)
	if err != nil || cityConfig.StationsFile == "" {
		return "", false
	}
	return ec.resolve(cityConfig.StationsFile), true
}

func (ec *ExplorerConfig) resolve(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(ec.DataDir, filename)
}
