package main

import (
	"fmt"

	"ronn-bot/internal/config"
	"ronn-bot/internal/roles"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate config and secrets and list the reaction role bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.debug)

			cfg, err := readConfig(opts.configPath, logger)
			if err != nil {
				return err
			}
			if _, err := config.LoadSecrets(opts.envFile); err != nil {
				return err
			}
			table, err := roles.Build(cfg.ReactionRoles)
			if err != nil {
				return err
			}
			if _, err := devGuild(cfg.Dev); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "watched channel: %d\n", cfg.ReactionRoles.ChannelID)
			fmt.Fprintf(out, "ignore bots: %t\n", cfg.ReactionRoles.ShouldIgnoreBots())
			for _, binding := range table.Bindings() {
				fmt.Fprintf(out, "%s -> %s\n", binding.Key, binding.RoleID)
			}
			return nil
		},
	}
}
