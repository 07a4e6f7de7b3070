package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// reloadDebounce is how long a watched file must stay untouched before it is reloaded.
const reloadDebounce = 100 * time.Millisecond

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func encode(path string, c Config) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(c)
	}
	return toml.Marshal(c)
}

func decode(path string, data []byte, c *Config) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, c)
	}
	return toml.Unmarshal(data, c)
}

// Save writes c to path, as YAML if the extension is .yaml or .yml and as TOML otherwise.
func Save(path string, c Config) error {
	data, err := encode(path, c)
	if err != nil {
		return oerror.Wrap(err, "encode config")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return oerror.Wrap(err, "write config")
	}
	return nil
}

// Load reads the configuration at path. If the file does not exist yet, it is created with
// the default configuration, which is returned. Fields missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	c := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, c); err != nil {
			return c, oerror.Wrap(err, "create default config")
		}
		return c, nil
	}
	return read(path)
}

func read(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, oerror.Wrap(err, "read config")
	}
	if err := decode(path, data, &c); err != nil {
		return c, oerror.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return c, oerror.Wrap(err, "invalid config %s", path)
	}
	return c, nil
}

// Watch reloads the configuration at path every time it is written and passes each valid
// result to fn. Invalid files are logged and skipped. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, log *slog.Logger, fn func(Config)) error {
	if log == nil {
		log = slog.Default()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return oerror.Wrap(err, "create config watcher")
	}
	defer w.Close()

	// Editors often replace the file instead of writing to it, so the directory is watched.
	abs, err := filepath.Abs(path)
	if err != nil {
		return oerror.Wrap(err, "resolve config path")
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return oerror.Wrap(err, "watch config directory")
	}

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, _ := filepath.Abs(event.Name); name != abs {
				continue
			}
			// A single save usually produces several events; reload once they settle.
			reload = time.After(reloadDebounce)
		case <-reload:
			reload = nil
			c, err := read(abs)
			if err != nil {
				log.Warn("rejected config reload", "path", path, "err", err)
				continue
			}
			log.Info("reloaded config", "path", path)
			fn(c)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("config watcher error", "err", err)
		}
	}
}
