package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/blogcfg/internal/logfields"
)

// envFiles are read (in order) from the configuration directory; later files
// win over earlier ones.
var envFiles = []string{".env", ".env.local"}

var (
	envMu sync.Mutex
	// envApplied records the values this process set from env files, so a
	// reload can replace them while real environment variables stay untouched.
	envApplied = map[string]string{}
)

// loadEnvFiles applies the env files of dir to the process environment.
// Variables set outside the env files are never overridden. Variables that a
// previous load set are updated, or unset when they left the files.
func loadEnvFiles(dir string) {
	values := map[string]string{}
	for _, name := range envFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		vars, err := godotenv.Read(p)
		if err != nil {
			slog.Warn("Failed to load env file", logfields.Path(p), logfields.Error(err))
			continue
		}
		for k, v := range vars {
			values[k] = v
		}
		slog.Debug("Loaded environment variables", logfields.Path(p))
	}

	envMu.Lock()
	defer envMu.Unlock()
	for k, v := range values {
		if cur, ok := os.LookupEnv(k); ok && !ownedEnv(k, cur) {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			slog.Warn("Failed to set environment variable", slog.String("key", k), logfields.Error(err))
			continue
		}
		envApplied[k] = v
	}
	for k := range envApplied {
		if _, ok := values[k]; ok {
			continue
		}
		if cur, ok := os.LookupEnv(k); ok && ownedEnv(k, cur) {
			_ = os.Unsetenv(k)
		}
		delete(envApplied, k)
	}
}

// ownedEnv reports whether the current value of k was set from an env file.
func ownedEnv(k, cur string) bool {
	v, ok := envApplied[k]
	return ok && v == cur
}
