// Package config loads the optional routemap.json project file.
//
// The file is entirely optional: routemap works without any configuration,
// defaulting the routes directory to src/routes under the working directory.
// A routemap.json lets a project pin a non-standard routes location and the
// inspection server's bind address.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "routemap.json"

	// DefaultRoutesDir is the routes directory relative to the project
	// root when no configuration overrides it.
	DefaultRoutesDir = "src/routes"

	// DefaultPort is the default inspection server port.
	DefaultPort = 4173

	// DefaultHost is the default inspection server host.
	DefaultHost = "localhost"
)

// Config represents the complete routemap.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Paths contains path configuration.
	Paths PathsConfig `json:"paths,omitempty"`

	// Serve contains inspection server configuration.
	Serve ServeConfig `json:"serve,omitempty"`

	// dir is the directory the config was resolved against.
	dir string
}

// PathsConfig contains path configuration.
type PathsConfig struct {
	// Routes is the routes directory, relative to the project root.
	Routes string `json:"routes,omitempty"`
}

// ServeConfig contains inspection server settings.
type ServeConfig struct {
	// Port is the port the inspection server binds to.
	Port int `json:"port,omitempty"`

	// Host is the host the inspection server binds to.
	Host string `json:"host,omitempty"`
}

// New creates a Config with default values, resolved against dir.
func New(dir string) *Config {
	return &Config{
		Paths: PathsConfig{Routes: DefaultRoutesDir},
		Serve: ServeConfig{Port: DefaultPort, Host: DefaultHost},
		dir:   dir,
	}
}

// Load reads routemap.json from the given directory. A missing file is not
// an error; defaults apply. A malformed file is.
func Load(dir string) (*Config, error) {
	cfg := New(dir)

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	// Zero values from the file fall back to defaults.
	if cfg.Paths.Routes == "" {
		cfg.Paths.Routes = DefaultRoutesDir
	}
	if cfg.Serve.Port == 0 {
		cfg.Serve.Port = DefaultPort
	}
	if cfg.Serve.Host == "" {
		cfg.Serve.Host = DefaultHost
	}
	return cfg, nil
}

// LoadFromWorkingDir reads routemap.json from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return Load(cwd)
}

// Dir returns the directory the config was resolved against.
func (c *Config) Dir() string {
	return c.dir
}

// RoutesPath returns the configured routes directory as a path rooted at
// the config's directory. An absolute configured path is used as-is.
func (c *Config) RoutesPath() string {
	if filepath.IsAbs(c.Paths.Routes) {
		return c.Paths.Routes
	}
	return filepath.Join(c.dir, c.Paths.Routes)
}

// ServeAddr returns the host:port address for the inspection server.
func (c *Config) ServeAddr() string {
	return fmt.Sprintf("%s:%d", c.Serve.Host, c.Serve.Port)
}
