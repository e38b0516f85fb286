package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdlinkcheck <root>",
		Short: "Check internal and external links in a Markdown documentation tree",
		Long: `mdlinkcheck indexes every page of a documentation tree by the category and
slug declared in its front matter, then checks each link found in the pages:
relative links must resolve to an indexed page and heading, absolute links
must answer a HEAD request.

Settings are read from <root>/.mdlinkcheck.yaml, MDLINKCHECK_* environment
variables and flags, in that order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("missing documentation root (usage: %s)", cmd.UseLine())
			}
			return RunCheck(cmd, args)
		},
	}
	addCheckFlags(rootCmd)

	checkCmd := &cobra.Command{
		Use:   "check <root>",
		Short: "Check every link under the documentation root",
		Args:  cobra.ExactArgs(1),
		RunE:  RunCheck,
	}
	addCheckFlags(checkCmd)

	indexCmd := &cobra.Command{
		Use:   "index <root>",
		Short: "Print the indexed documents and their headings",
		Args:  cobra.ExactArgs(1),
		RunE:  RunIndex,
	}
	indexCmd.Flags().String("config", "", "Config file (default: <root>/.mdlinkcheck.yaml)")
	indexCmd.Flags().Bool("json", false, "Print machine-readable index")
	indexCmd.Flags().Bool("verbose", false, "Log debug details to stderr")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mdlinkcheck %s\n", version)
		},
	}

	rootCmd.AddCommand(
		checkCmd,
		indexCmd,
		versionCmd,
	)

	return rootCmd
}

func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Config file (default: <root>/.mdlinkcheck.yaml)")
	cmd.Flags().Int("workers", 0, "Concurrent external link checks (default 8)")
	cmd.Flags().Duration("timeout", 0, "Per-request timeout for external links (default 10s)")
	cmd.Flags().Bool("strict", false, "Exit with status 2 when any link problem is found")
	cmd.Flags().Bool("check-status", false, "Treat HTTP status 400 and above as a failed external link")
	cmd.Flags().String("syntax", "", "Link syntax: regex|markdown|treesitter (default regex)")
	cmd.Flags().Bool("offline", false, "Count external links without contacting their hosts")
	cmd.Flags().Bool("json", false, "Print machine-readable run summary")
	cmd.Flags().Bool("quiet", false, "Only log errors")
	cmd.Flags().Bool("verbose", false, "Log debug details to stderr")
}
