// Package cmd implements the portalworld command line
package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "portalworld",
		Short:        "Run agents in a grid world with food, walls, and portals",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetPrefix("portalworld: ")
			log.SetFlags(0)
			return UpdateFlags()
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		RunCommand(),
		SpecCommand(),
	)

	return cmd
}
