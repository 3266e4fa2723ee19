package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rbourbonnavarro/Salesforce-Hiring/internal/config"
	"github.com/rbourbonnavarro/Salesforce-Hiring/internal/logging"
	"github.com/rbourbonnavarro/Salesforce-Hiring/internal/shell"
	"github.com/rbourbonnavarro/Salesforce-Hiring/internal/snapshot"
	"github.com/rbourbonnavarro/Salesforce-Hiring/internal/vfs"
	"github.com/rbourbonnavarro/Salesforce-Hiring/pkg/vfsh"
)

// runSession wires the tree, interpreter, and optional snapshot store
// together and runs the interactive loop over stdin/stdout.
func runSession(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	// .env values surface as environment overrides, keeping the
	// flag > env > file > default precedence in one place.
	_ = godotenv.Load()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sys := vfs.NewSystem()

	var store *snapshot.Store
	if cfg.Snapshot.Path != "" {
		store = snapshot.NewStore(cfg.Snapshot.Path, cfg.Snapshot.Compress, logger)
		if root, err := store.Load(); err != nil {
			// All-or-nothing: an unreadable snapshot means an empty root.
			logger.Verbose("snapshot not loaded, starting empty: %v", err)
		} else {
			sys.Reset(root)
		}
	}

	sh := shell.New(sys, logger)
	if err := sh.Run(os.Stdin, os.Stdout, sessionPrompt(cfg)); err != nil {
		return err
	}

	if store != nil {
		if err := store.Save(sys.Root()); err != nil {
			return fmt.Errorf("%w: %v", vfsh.ErrSnapshotSave, err)
		}
	}
	return nil
}

// resolveConfig layers the configuration sources: vfsh.yaml, then VFSH_*
// environment variables, then explicitly-set CLI flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, err := cmd.Flags().GetString("config-dir")
	if err != nil {
		dir = "."
	}

	cfg, err := config.Load(dir)
	if errors.Is(err, config.ErrConfigNotFound) {
		cfg = config.Default()
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", vfsh.ErrInvalidConfig, err)
	}

	cfg.ApplyEnvironment()

	if cmd.Flags().Changed("snapshot") {
		cfg.Snapshot.Path, _ = cmd.Flags().GetString("snapshot")
	}
	if cmd.Flags().Changed("compress") {
		cfg.Snapshot.Compress, _ = cmd.Flags().GetBool("compress")
	}
	return cfg, nil
}

// sessionPrompt returns the styled prompt for interactive sessions, or ""
// when stdin is not a terminal so piped sessions stay byte-exact.
func sessionPrompt(cfg *config.Config) string {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ""
	}
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = vfsh.DefaultPrompt
	}
	return promptStyle.Render(prompt)
}
