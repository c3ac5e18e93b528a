package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `  _                   _
 | |_ __ _  __ _   __| | ___   ___
 | __/ _' |/ _' | / _' |/ _ \ / __|
 | || (_| | (_| || (_| | (_) | (__
  \__\__,_|\__, | \__,_|\___/ \___|
           |___/`

var rootCmd = &cobra.Command{
	Use:   "tagdoc",
	Short: "Tag documentation generator",
	Long: asciiLogo + `

tagdoc walks every tag definition registered under a namespace, extracts
its metadata (key, validation strategy, value enumeration, documentation
links) and renders a catalog as HTML, JSON or YAML.

Discovery is all-or-nothing: a broken documentation link in any tag
definition fails the run rather than publishing a broken catalog.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Definition discovery failed
  12 - Malformed documentation link in a tag definition
  13 - Rendering failed`,
	SilenceUsage: true,
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
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
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
