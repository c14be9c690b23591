package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yakov-partners/know2-cli/internal/domain"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage catalog authentication",
	}

	cmd.AddCommand(newAuthLoginCmd(app), newAuthCheckCmd(app))

	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	var opts sessionOptions
	var save bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials against the catalog, optionally storing them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer session.Close()

			if save {
				if err := saveCredentials(cmd, app, opts); err != nil {
					return err
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "login ok")
			return err
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Connection profile (default: active profile)")
	cmd.Flags().StringVar(&opts.Username, "username", "", "Catalog username")
	cmd.Flags().StringVar(&opts.Password, "password", "", "Catalog password (prefer K2_PASSWORD)")
	cmd.Flags().BoolVar(&opts.Admin, "admin", false, "Use the service credential")
	cmd.Flags().BoolVar(&save, "save", false, "Store the credential and update the profile")

	return cmd
}

func saveCredentials(cmd *cobra.Command, app *app, opts sessionOptions) error {
	profileName := opts.Profile
	if profileName == "" {
		profileName = app.cfg.GetString("profile")
	}

	password := opts.Password
	if password == "" {
		password = app.cfg.GetString("password")
	}
	if password == "" {
		return errors.New("nothing to save: no password given")
	}

	profile, err := app.profiles.GetByName(cmd.Context(), profileName)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return fmt.Errorf("load profile %q: %w", profileName, err)
		}
		profile = domain.Profile{Name: profileName, BaseURL: app.cfg.GetString("base_url")}
	}

	secretRef := secretKeyForProfile(profileName)
	if err := app.secretStore.Put(cmd.Context(), secretRef, password); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}

	if opts.Username != "" {
		profile.Username = opts.Username
	}
	profile.SecretRef = secretRef

	if err := app.profiles.Save(cmd.Context(), profile); err != nil {
		if deleteErr := app.secretStore.Delete(cmd.Context(), secretRef); deleteErr != nil {
			return fmt.Errorf("save profile and roll back stored credential: %w", errors.Join(err, deleteErr))
		}
		return fmt.Errorf("save profile: %w", err)
	}

	return nil
}

func newAuthCheckCmd(app *app) *cobra.Command {
	var opts sessionOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check session liveness against the auth endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer session.Close()

			if err := session.Check(cmd.Context()); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "session ok")
			return err
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Connection profile (default: active profile)")
	cmd.Flags().StringVar(&opts.Username, "username", "", "Catalog username")
	cmd.Flags().BoolVar(&opts.Admin, "admin", false, "Use the service credential")

	return cmd
}
