package config

import (
	"os"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// LoadProfile loads a query profile from a YAML file
func LoadProfile(path string) (*model.QueryProfile, error) {
	if path == "" {
		return nil, goerr.New("profile file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "profile file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read profile file",
			goerr.V("path", path))
	}

	var profile model.QueryProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML profile",
			goerr.V("path", path))
	}

	if err := profile.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid profile",
			goerr.V("path", path))
	}

	return &profile, nil
}
