package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	route      string
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "tabshell",
		Short: "Bottom tab navigation shell (Map View, Account, Social Feed)",
		Long: `tabshell runs a terminal navigation shell with a bottom tab bar.

Tabs and routes stay in sync: selecting a tab navigates to its route, and
starting at a route (--route /account) highlights its tab.

Routes: /  /account  /social`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVarP(&opts.route, "route", "r", "", "start route (deep link), overrides start_route")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file, overrides log.file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug level logging")
	return cmd
}
