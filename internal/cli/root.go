package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rbourbonnavarro/Salesforce-Hiring/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "vfsh",
	Short: "In-memory virtual file system shell",
	Long: `vfsh runs a line-oriented shell over a hierarchical file system kept
entirely in memory. One line is one command; results are printed to stdout,
diagnostics to stderr.

Commands:
  pwd                    print the current directory's absolute path
  ls [-r] [-mf <path>]   list a directory, optionally recursively or at a path
  mkdir <name>           create a directory
  cd [-mf] <path>        change directory (single segment, or -mf for a path)
  touch <name>           create a file (no-op if the name exists)
  quit                   end the session

With a snapshot path configured (flag, VFSH_SNAPSHOT, or vfsh.yaml) the tree
is loaded at startup and saved when the session ends. A snapshot that cannot
be read is ignored and the session starts empty.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Snapshot could not be written at shutdown`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSession,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose diagnostics on stderr")
	registerSessionFlags(rootCmd)
}

// registerSessionFlags installs the session flags. Split out so tests can
// build throwaway commands with the same flag set.
func registerSessionFlags(cmd *cobra.Command) {
	cmd.Flags().String("snapshot", "",
		"Snapshot file path; enables persistence\n"+
			"Precedence: --snapshot > $"+config.EnvSnapshot+" > "+config.ConfigFileName)
	cmd.Flags().Bool("compress", false,
		"Write the snapshot zstd-compressed\n"+
			"Precedence: --compress > $"+config.EnvSnapshotCompress+" > "+config.ConfigFileName)
	cmd.Flags().String("config-dir", ".",
		"Directory searched for "+config.ConfigFileName)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
