package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/devshop/devapp/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads devapp.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if y.Devapp.Defaults.Target != "" {
		kind, err := domain.ParseMachineKind(y.Devapp.Defaults.Target)
		if err != nil {
			return domain.DefaultConfig(), &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		cfg.Defaults.Target = kind
	}
	if y.Devapp.Logging.Dir != "" {
		cfg.Logging.Dir = y.Devapp.Logging.Dir
	}
	if y.Devapp.Logging.Debug != nil {
		cfg.Logging.Debug = *y.Devapp.Logging.Debug
	}

	return cfg, nil
}

// MarshalConfig renders cfg in the devapp.yaml shape LoadConfig reads.
func MarshalConfig(cfg domain.Config) ([]byte, error) {
	var y yamlConfig
	y.Devapp.Defaults.Target = string(cfg.Defaults.Target)
	y.Devapp.Logging.Dir = cfg.Logging.Dir
	debug := cfg.Logging.Debug
	y.Devapp.Logging.Debug = &debug
	return yaml.Marshal(&y)
}

type yamlConfig struct {
	Devapp struct {
		Defaults struct {
			Target string `yaml:"target"`
		} `yaml:"defaults"`

		Logging struct {
			Dir   string `yaml:"dir"`
			Debug *bool  `yaml:"debug"`
		} `yaml:"logging"`
	} `yaml:"devapp"`
}
