package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shivansh-2508/PGT-Portal/internal/cli/ui"
)

const version = "0.1.0"

var (
	cfgFile      string
	serverFlag   string
	logLevelFlag string
)

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "pgtctl",
	Short:   "Pinnacle Group Tuitions portal CLI",
	Version: version,
	Long: `A command-line client for the Pinnacle Group Tuitions portal.
Sign in as staff or student, keep the session on this machine and
view the signed-in account.`,
	Example: `  # Sign in with the interactive form
  $ pgtctl login

  # Sign in as a student with plain prompts
  $ pgtctl login --role student -u alice --plain

  # Show the signed-in account
  $ pgtctl dash

  # Forget the saved session
  $ pgtctl logout`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(formatVersion())
	return rootCmd.Execute()
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default ~/.pgtctl/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&serverFlag, "server", "s", "", "portal API server address")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(logoutCmd)

	// Set custom template with bold uppercase headers
	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableInheritedFlags}}` + ui.Styles.Bold.Render("GLOBAL OPTIONS") + `
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// formatVersion formats the version output
func formatVersion() string {
	return fmt.Sprintf("pgtctl version %s\n", version)
}
