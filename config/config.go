package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/flowcase/flow"
	"github.com/katalvlaran/flowcase/judge"
	"github.com/katalvlaran/flowcase/network"
)

// EnvPrefix prefixes environment overrides, e.g. FLOWCONV_WORKERS=4.
const EnvPrefix = "FLOWCONV"

// Config manages converter configuration using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults and environment overrides.
func New() *Config {
	v := viper.New()

	v.SetDefault("root", ".")
	v.SetDefault("problem", "all")

	// one directory per judge, relative to root unless absolute
	v.SetDefault("dirs."+judge.AOJGRL6A.String(), "AOJ_GRL_6_A")
	v.SetDefault("dirs."+judge.LibreOJ101.String(), "LibreOJ_101")
	v.SetDefault("dirs."+judge.AOJGRL6B.String(), "AOJ_GRL_6_B")
	v.SetDefault("dirs."+judge.LibraryCheckerBFlow.String(), "LibraryChecker_min_cost_b_flow")

	// a single judge key restricts the run to that directory
	v.SetDefault("format", "")

	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("verify", false)
	v.SetDefault("solver", flow.SolverDinic)
	v.SetDefault("bundle", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges a YAML/JSON/TOML file into the configuration.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}

// Set allows flag overrides after loading.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Getters
func (c *Config) Root() string     { return c.v.GetString("root") }
func (c *Config) Problem() string  { return strings.ToLower(c.v.GetString("problem")) }
func (c *Config) Verify() bool     { return c.v.GetBool("verify") }
func (c *Config) Bundle() string   { return c.v.GetString("bundle") }
func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }
func (c *Config) LogConsole() bool { return c.v.GetBool("logging.console") }

// Workers is the per-directory fan-out; never below 1.
func (c *Config) Workers() int {
	if w := c.v.GetInt("workers"); w > 0 {
		return w
	}
	return 1
}

// Solver returns the max-flow solver named by "solver" for the verify pass.
func (c *Config) Solver() (flow.Solver, error) {
	return flow.SolverByName(strings.ToLower(c.v.GetString("solver")))
}

// Dir returns the directory holding raw cases of format f.
func (c *Config) Dir(f judge.Format) string {
	dir := c.v.GetString("dirs." + f.String())
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.Root(), dir)
}

// Job is one directory to convert with one adapter.
type Job struct {
	Format judge.Format
	Dir    string
}

// Jobs lists the directories to convert. A non-empty "format" key selects
// exactly that judge; otherwise Problem() selects, in fixed order:
// AOJ GRL_6_A, LibreOJ 101, AOJ GRL_6_B, Library Checker.
func (c *Config) Jobs() ([]Job, error) {
	if name := c.v.GetString("format"); name != "" {
		f, err := judge.ParseFormat(name)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		return []Job{{Format: f, Dir: c.Dir(f)}}, nil
	}

	var want func(network.Problem) bool
	switch c.Problem() {
	case "all", "":
		want = func(network.Problem) bool { return true }
	case network.MaxFlow.String():
		want = func(p network.Problem) bool { return p == network.MaxFlow }
	case network.MinCostFlow.String():
		want = func(p network.Problem) bool { return p == network.MinCostFlow }
	default:
		return nil, fmt.Errorf("config: unknown problem %q (want all, %s or %s)",
			c.Problem(), network.MaxFlow, network.MinCostFlow)
	}

	var jobs []Job
	for _, f := range judge.Formats {
		if want(f.Problem()) {
			jobs = append(jobs, Job{Format: f, Dir: c.Dir(f)})
		}
	}
	return jobs, nil
}

// CreateLogger creates a zerolog logger based on config, writing to w
// (os.Stderr when nil). Writes are serialized, so the logger may be shared
// by converter workers.
func (c *Config) CreateLogger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	w = zerolog.SyncWriter(w)
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	if c.LogConsole() {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "flowconv").Logger()
}
