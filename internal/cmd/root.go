package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/user/sso2json/internal/aws"
	"github.com/user/sso2json/internal/logging"
)

var (
	cfgFile string
	output  string
	verbose bool
	debug   bool
)

// profileList is the wrapper object consumers receive on stdout.
type profileList struct {
	Profiles []aws.SSOProfile `json:"profiles" yaml:"profiles"`
}

// NewRootCmd creates the root command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sso2json",
		Short: "Extract AWS SSO profiles from the AWS config file as JSON",
		Long: `sso2json parses the AWS config file and prints every profile that
authenticates via IAM Identity Center (SSO) as one JSON document.

Much faster than running 'aws configure get' once per profile; the
output is meant to be piped into jq or fzf.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.InitLogger(verbose, debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := aws.ParseSSOProfiles(cfgFile)
			if err != nil {
				return err
			}
			return renderProfiles(cmd.OutOrStdout(), profiles, output)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "AWS config file (default: $AWS_CONFIG_FILE or ~/.aws/config)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "json", "Output format (json or yaml)")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

// renderProfiles writes the {"profiles": ...} wrapper. The zero-profile
// JSON case is emitted byte-for-byte as downstream jq pipelines expect
// it; json.Marshal would drop the space after the colon.
func renderProfiles(w io.Writer, profiles []aws.SSOProfile, format string) error {
	list := profileList{Profiles: profiles}

	switch format {
	case "json", "":
		if len(profiles) == 0 {
			_, err := fmt.Fprintln(w, `{"profiles": []}`)
			return err
		}
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode profiles: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(list)
		if err != nil {
			return fmt.Errorf("failed to encode profiles: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
