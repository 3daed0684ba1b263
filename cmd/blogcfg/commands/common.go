package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogcfg/internal/config"
	derrors "git.home.luguber.info/inful/blogcfg/internal/errors"
	"git.home.luguber.info/inful/blogcfg/internal/version"
)

// Global context passed to subcommands.
type Global struct {
	Out io.Writer
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"blogcfg.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Write the framework configuration for the site"`
	Validate ValidateCmd `cmd:"" help:"Check the site configuration and navbar shape"`
	Navbar   NavbarCmd   `cmd:"" help:"Preview the resolved navbar of a locale"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate whenever the configuration changes"`

	logOut io.Writer `kong:"-"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	configureLogging(c.logOut, c.Verbose, config.LoggingConfig{})
	return nil
}

// loadConfig loads the root configuration and applies its logging section
// unless --verbose already decided the level.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	configureLogging(c.logOut, c.Verbose, cfg.Monitoring.Logging)
	return cfg, nil
}

// configDir is the directory relative paths in the configuration resolve against.
func (c *CLI) configDir() string { return filepath.Dir(c.Config) }

func configureLogging(w io.Writer, verbose bool, lc config.LoggingConfig) {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	switch lc.Level {
	case config.LogLevelDebug:
		level = slog.LevelDebug
	case config.LogLevelWarn:
		level = slog.LevelWarn
	case config.LogLevelError:
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if lc.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

type exitCode int

// Main parses args, runs the selected command and returns the process exit
// code. Output goes to stdout and stderr so it can be captured in tests.
func Main(args []string, stdout, stderr io.Writer) (code int) {
	cli := &CLI{logOut: stderr}
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	parser, err := kong.New(cli,
		kong.Name("blogcfg"),
		kong.Description("Blog site configuration generator"),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
	)
	if err != nil {
		return derrors.NewCLIErrorAdapter(false, nil).SetOutput(stderr).Report(
			derrors.InternalError("failed to build command line", err))
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 1
	}

	err = kctx.Run(&Global{Out: stdout}, cli)
	return derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).SetOutput(stderr).Report(err)
}

func resolveAgainst(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
