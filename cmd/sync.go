package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/yakov-partners/know2-cli/internal/adapters/render/syncreport"
	"github.com/yakov-partners/know2-cli/internal/application"
	"github.com/yakov-partners/know2-cli/internal/domain"
)

func newSyncCmd(app *app) *cobra.Command {
	var opts sessionOptions
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize all reference datasets from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd, app, opts, asJSON)
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Connection profile (default: active profile)")
	cmd.Flags().StringVar(&opts.Username, "username", "", "Catalog username (overrides profile)")
	cmd.Flags().BoolVar(&opts.Admin, "admin", false, "Use the service credential")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render dataset counts as JSON")

	return cmd
}

func runSync(cmd *cobra.Command, app *app, opts sessionOptions, asJSON bool) error {
	session, err := app.openSession(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer session.Close()

	service := application.NewSyncService(session, app.log)

	var cache *domain.ReferenceCache
	started := time.Now()
	runPass := func(ctx context.Context) error {
		var syncErr error
		cache, syncErr = service.Sync(ctx)
		return syncErr
	}

	if asJSON {
		if err := runPass(cmd.Context()); err != nil {
			return err
		}
		return writeSyncJSON(cmd, cache)
	}

	if err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Synchronizing reference data...", runPass); err != nil {
		return err
	}

	report, err := syncreport.Render(cache, syncreport.RenderOptions{Elapsed: time.Since(started)})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), report)
	return err
}

func writeSyncJSON(cmd *cobra.Command, cache *domain.ReferenceCache) error {
	counts := make(map[string]int, len(domain.DatasetNames))
	for _, name := range domain.DatasetNames {
		counts[name] = len(cache.Mapping(name))
	}

	encoded, err := json.MarshalIndent(counts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sync summary: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return err
}
