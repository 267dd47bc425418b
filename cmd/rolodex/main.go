package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolodex"
	"github.com/smileynet/rolodex/internal/config"
	"github.com/smileynet/rolodex/internal/contact"
	"github.com/smileynet/rolodex/internal/dashboard"
	"github.com/smileynet/rolodex/internal/listing"
	"github.com/smileynet/rolodex/internal/logging"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Globals are flags shared by every command.
type Globals struct {
	Config string `help:"Config file layered over the user and project config." placeholder:"PATH"`
}

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version." short:"V"`
	Browse  BrowseCmd        `cmd:"" default:"withargs" help:"Browse contacts in the interactive TUI."`
	List    ListCmd          `cmd:"" help:"Print sample contacts without a terminal UI."`
}

// loadConfig loads layered config from user, project and flag paths with env
// overrides, then validates the result.
func loadConfig(extra string) (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		".rolodex/config.yaml",
		extra,
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newStore builds a store over the configured name pools. A zero seed keeps
// the store's random source.
func newStore(cfg *config.Config, logger *slog.Logger) (*contact.Store, error) {
	pools, err := contact.LoadPools(rolodex.OverlayFS(cfg.Sample.PoolsDir, rolodex.Samples))
	if err != nil {
		return nil, err
	}
	opts := []contact.StoreOption{contact.WithLogger(logger)}
	if cfg.Sample.Seed != 0 {
		opts = append(opts, contact.WithRand(contact.NewSeededRand(cfg.Sample.Seed)))
	}
	return contact.NewStore(pools, opts...), nil
}

// --- Browse command ---

// BrowseCmd opens the contact list TUI.
type BrowseCmd struct {
	NoSample bool   `help:"Start with an empty list instead of generated samples."`
	Seed     uint64 `help:"Seed for sample generation (0 picks a random seed)."`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// apply layers the command's flags over cfg.
func (b *BrowseCmd) apply(cfg *config.Config) {
	if b.NoSample {
		cfg.Sample.Generate = false
	}
	if b.Seed != 0 {
		cfg.Sample.Seed = b.Seed
	}
}

// Run builds real dependencies and launches the TUI.
func (b *BrowseCmd) Run(g *Globals) error {
	if !listing.IsTerminal(os.Stdout) {
		return fmt.Errorf("browse: requires a terminal (TTY); use 'rolodex list' instead")
	}

	cfg, err := loadConfig(g.Config)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	b.apply(cfg)

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	logger, closer, err := logging.Open(cfg.Log.File, level)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	defer closer.Close()

	store, err := newStore(cfg, logger)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	m := dashboard.NewModel(store,
		dashboard.WithLogger(logger),
		dashboard.WithSampleOnInit(cfg.Sample.Generate),
	)
	defer m.Close()

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	logger.Info("browse started", "version", version, "sample", cfg.Sample.Generate)
	return b.run(true, tea.NewProgram(m, opts...))
}

// run executes the tea program, enabling testable wiring.
func (b *BrowseCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("browse: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

// --- List command ---

// ListCmd writes a generated contact list to stdout.
type ListCmd struct {
	Format string `help:"Output format (${enum})." enum:"text,yaml" default:"text"`
	Seed   uint64 `help:"Seed for reproducible output (0 picks a random seed)."`
}

// Run builds a store, generates samples when enabled and writes them out.
// Logs go to stderr so stdout stays machine-readable.
func (l *ListCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g.Config)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	if l.Seed != 0 {
		cfg.Sample.Seed = l.Seed
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	logger := logging.New(os.Stderr, level, listing.IsTerminal(os.Stderr))

	store, err := newStore(cfg, logger)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	if cfg.Sample.Generate {
		store.Generate()
	}
	return l.run(os.Stdout, store)
}

// run writes the store's contacts to w in the selected format.
func (l *ListCmd) run(w io.Writer, store *contact.Store) error {
	lw, err := listing.NewWriter(w, listing.Format(l.Format))
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	if err := lw.Write(store.Contacts()); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return nil
}

const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rolodex"),
		kong.Description("A terminal contact list."),
		kong.Vars{"version": version + " " + commit + " " + date},
		kong.Bind(&cli.Globals),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
