package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "tagtrack",
	Short: "Track tag deployments to production in GitLab",
	Long: `Tagtrack queries a GitLab instance to determine whether a release tag has
been deployed to the production environment.

It can check a single project (and optionally a specific tag), or produce a
CSV report across every project visible to the token, listing each matched
production environment with its latest deployment time and the creation time
of the tag that deployment used.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Custom usage template that encourages 'help' subcommand pattern
const usageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

Available Commands:{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

Additional Commands:{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} help [command]" for more information about a command.{{end}}
`

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Set custom usage template to encourage 'help' subcommand pattern
	rootCmd.SetUsageTemplate(usageTemplate)

	// Connection flags shared by all subcommands
	rootCmd.PersistentFlags().String("url", getEnvOrDefault("TAGTRACK_URL", ""), "GitLab instance URL (e.g. https://gitlab.com)")
	rootCmd.PersistentFlags().String("token", getEnvOrDefault("TAGTRACK_TOKEN", ""), "GitLab personal access token")
	rootCmd.PersistentFlags().String("config", getEnvOrDefault("TAGTRACK_CONFIG_FILE", ""), "Path to tagtrack.yaml configuration file")
	rootCmd.PersistentFlags().Float64("rate-limit", 0, "Maximum API requests per second (0 = unlimited)")

	// Register subcommands
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}

// Helper function for environment variables
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
