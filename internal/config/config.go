// Package config persists box-client settings, most importantly the OAuth
// token, to a JSON file in the user's home directory. Writes are guarded by
// a file lock so concurrent invocations (or a refresh racing a command in a
// second terminal) never interleave partial JSON.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/mitchellh/go-homedir"

	"github.com/boxtools/box-client/pkg/box"
)

const (
	configDirName  = ".box-client"
	configFileName = "config.json"
)

// Configuration holds all persisted settings.
type Configuration struct {
	Token box.Token `json:"token"`
	Debug bool      `json:"debug"`

	mu sync.Mutex `json:"-"`
}

// Path returns the location of the configuration file.
func Path() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Save writes the configuration to disk, creating the directory on first
// use. The file lock spans the whole write so readers in other processes
// never observe a torn file.
func (c *Configuration) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked()
}

func (c *Configuration) saveLocked() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking config file: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// UpdateToken replaces the persisted token. It is the callback handed to
// the SDK's token source so refreshed tokens survive process restarts.
func (c *Configuration) UpdateToken(token *box.Token) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Token = *token
	return c.saveLocked()
}

// Load reads the configuration from disk.
func Load() (*Configuration, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := &Configuration{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return config, nil
}

// LoadOrCreate loads the configuration, returning an empty one when no file
// exists yet.
func LoadOrCreate() (*Configuration, error) {
	config, err := Load()
	if err != nil {
		if os.IsNotExist(err) {
			return &Configuration{}, nil
		}
		return nil, err
	}
	return config, nil
}
