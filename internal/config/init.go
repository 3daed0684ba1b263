package config

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"

	"git.home.luguber.info/inful/blogcfg/internal/navbar"
	"git.home.luguber.info/inful/blogcfg/internal/site"
)

// Example returns the reference blog configuration as it appears on disk.
func Example() *Config {
	ex := site.Example()
	return &Config{
		Version: CurrentVersion,
		Site: SiteConfig{
			Base:    ex.Base,
			Locales: ex.Locales,
			Theme:   ex.Theme,
		},
		Navbar: map[string]navbar.Navbar{site.RootLocale: site.ExampleNavbar()},
		Content: ContentConfig{
			Directory: DefaultContentDirectory,
		},
		Output: OutputConfig{
			Directory: DefaultOutputDirectory,
			Target:    TargetVuePress,
		},
		Monitoring: MonitoringConfig{
			Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
		},
	}
}

// Init writes the reference blog configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	data, err := site.EncodeYAML(Example())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := renameio.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
