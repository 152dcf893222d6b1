package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pescuma/stignore-agent/lib/model"
	"github.com/pescuma/stignore-agent/lib/utils"
)

type Folder struct {
	Name  string `yaml:"name"`
	Depth int    `yaml:"depth"`
}

type Config struct {
	// BaseFolder contains one folder per content type
	BaseFolder string   `yaml:"base_folder"`
	Folders    []Folder `yaml:"folders"`

	Port uint `yaml:"port"`

	// LockDir holds the lock files used to serialize changes per content type.
	// It must not be inside a synced folder.
	LockDir string `yaml:"lock_dir"`

	FollowSymlinks bool `yaml:"follow_symlinks"`
}

func DefaultConfig() *Config {
	return &Config{
		Port:    2427,
		LockDir: filepath.Join(os.TempDir(), "stignore-agent"),
	}
}

func Load(file string) (*Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file %v", file)
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	err := yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing config")
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BaseFolder == "" {
		return errors.New("missing base_folder in config")
	}

	seen := map[string]bool{}
	for i, f := range c.Folders {
		switch {
		case f.Name == "":
			return errors.Errorf("missing name in folder %v", i+1)
		case f.Name == "." || f.Name == ".." || strings.ContainsAny(f.Name, `/\`):
			return errors.Errorf("invalid folder name: %v", f.Name)
		case f.Depth < 0:
			return errors.Errorf("invalid depth for folder %v: %v", f.Name, f.Depth)
		case seen[f.Name]:
			return errors.Errorf("duplicated folder: %v", f.Name)
		}

		seen[f.Name] = true
	}

	return nil
}

// ContentTypes resolves the configured folders to absolute paths.
func (c *Config) ContentTypes() (*model.ContentTypes, error) {
	base, err := utils.PathAbs(c.BaseFolder)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base_folder: %v", c.BaseFolder)
	}

	cts := make([]*model.ContentType, 0, len(c.Folders))
	for _, f := range c.Folders {
		cts = append(cts, &model.ContentType{
			Name:        f.Name,
			RootPath:    filepath.Join(base, f.Name),
			SearchDepth: f.Depth,
		})
	}

	return model.NewContentTypes(cts...), nil
}
