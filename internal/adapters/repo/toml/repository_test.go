package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yakov-partners/know2-cli/internal/domain"
)

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()

	profilesPath := filepath.Join(t.TempDir(), "profiles.toml")
	cfg := viper.New()
	cfg.Set(profilesPathKey, profilesPath)

	repo, err := NewRepository(cfg)
	require.NoError(t, err)

	return repo, profilesPath
}

func TestRepositoryListOnMissingFile(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestRepositorySaveAndGetByName(t *testing.T) {
	t.Parallel()

	repo, profilesPath := newTestRepository(t)
	want := domain.Profile{
		Name:      "dev",
		BaseURL:   "https://know2.example.com",
		Username:  "analyst",
		SecretRef: "know2/dev/password",
	}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.GetByName(context.Background(), "dev")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(profilesPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(profilesFileMode), info.Mode().Perm())
}

func TestRepositorySaveReplacesExistingProfile(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.Profile{Name: "dev", BaseURL: "https://old.example.com"}))
	require.NoError(t, repo.Save(ctx, domain.Profile{Name: "staging", BaseURL: "https://staging.example.com"}))
	require.NoError(t, repo.Save(ctx, domain.Profile{Name: "dev", BaseURL: "https://new.example.com", Admin: true}))

	profiles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	got, err := repo.GetByName(ctx, "dev")
	require.NoError(t, err)
	assert.Equal(t, "https://new.example.com", got.BaseURL)
	assert.True(t, got.Admin)
}

func TestRepositorySaveRejectsEmptyName(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	err := repo.Save(context.Background(), domain.Profile{BaseURL: "https://know2.example.com"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "profile name is empty")
}

func TestRepositoryGetByNameMissingProfile(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	_, err := repo.GetByName(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProfileNotFound))
}

func TestRepositoryRejectsUnknownSchemaVersion(t *testing.T) {
	t.Parallel()

	repo, profilesPath := newTestRepository(t)
	require.NoError(t, os.WriteFile(profilesPath, []byte("version = 99\n"), 0o600))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported profiles schema version")
}

func TestRepositoryLeavesNoTempFilesBehind(t *testing.T) {
	t.Parallel()

	repo, profilesPath := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), domain.Profile{Name: "dev", BaseURL: "https://know2.example.com"}))

	entries, err := os.ReadDir(filepath.Dir(profilesPath))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(profilesPath), entries[0].Name())
}
