package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yakov-partners/know2-cli/internal/domain"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage catalog connection profiles",
	}

	cmd.AddCommand(newProfileListCmd(app), newProfileSetCmd(app), newProfileUseCmd(app))

	return cmd
}

func newProfileListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored connection profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := app.profiles.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list profiles: %w", err)
			}

			if len(profiles) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no profiles stored")
				return err
			}

			active := app.cfg.GetString("profile")
			for _, profile := range profiles {
				marker := " "
				if profile.Name == active {
					marker = "*"
				}
				credential := profile.Username
				if profile.Admin {
					credential = "(service credential)"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %-12s %-40s %s\n", marker, profile.Name, profile.BaseURL, credential); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newProfileUseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Switch the active connection profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if _, err := app.profiles.GetByName(cmd.Context(), name); err != nil {
				return fmt.Errorf("load profile %q: %w", name, err)
			}

			if err := persistActiveProfile(name); err != nil {
				return fmt.Errorf("persist active profile: %w", err)
			}
			app.cfg.Set("profile", name)

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "profile %q is now active\n", name)
			return err
		},
	}
}

func newProfileSetCmd(app *app) *cobra.Command {
	var profile domain.Profile

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update a connection profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.profiles.Save(cmd.Context(), profile); err != nil {
				return fmt.Errorf("save profile: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "profile %q saved\n", profile.Name)
			return err
		},
	}

	cmd.Flags().StringVar(&profile.Name, "name", "", "Profile name")
	cmd.Flags().StringVar(&profile.BaseURL, "base-url", "", "Catalog base URL")
	cmd.Flags().StringVar(&profile.Username, "username", "", "Catalog username")
	cmd.Flags().BoolVar(&profile.Admin, "admin", false, "Log in with the service credential")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("base-url")

	return cmd
}
