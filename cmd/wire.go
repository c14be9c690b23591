package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/yakov-partners/know2-cli/internal/adapters/know2"
	tomlrepo "github.com/yakov-partners/know2-cli/internal/adapters/repo/toml"
	chainstore "github.com/yakov-partners/know2-cli/internal/adapters/secrets/chain"
	"github.com/yakov-partners/know2-cli/internal/domain"
	"github.com/yakov-partners/know2-cli/internal/ports"
)

const (
	envPrefix        = "K2"
	defaultProfile   = "default"
	secretKeyPattern = "know2/%s/password"
)

type app struct {
	profiles    ports.ProfileRepository
	secretStore ports.SecretStore
	cfg         *viper.Viper
	log         zerolog.Logger
}

func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault("profile", defaultProfile)
	cfg.SetDefault("timeout", "30s")

	profiles, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(homeDir, ".know2", "secrets"))
	if err != nil {
		return nil, fmt.Errorf("wire credential store chain: %w", err)
	}

	return &app{
		profiles:    profiles,
		secretStore: secretStore,
		cfg:         cfg,
		log:         newLogger(),
	}, nil
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if os.Getenv("K2_VERBOSE") != "" {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// sessionOptions are the per-invocation overrides of the stored profile.
type sessionOptions struct {
	Profile  string
	Username string
	Password string
	Admin    bool
}

// openSession resolves profile, credentials and base URL, then dials the
// catalog. The caller owns the returned session and must Close it on every
// exit path.
func (a *app) openSession(ctx context.Context, opts sessionOptions) (*know2.Session, error) {
	profileName := opts.Profile
	if profileName == "" {
		profileName = a.cfg.GetString("profile")
	}

	profile, err := a.profiles.GetByName(ctx, profileName)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, fmt.Errorf("load profile %q: %w", profileName, err)
	}

	baseURL := a.cfg.GetString("base_url")
	if baseURL == "" {
		baseURL = profile.BaseURL
	}

	username := opts.Username
	if username == "" {
		username = profile.Username
	}

	password := opts.Password
	if password == "" {
		password = a.cfg.GetString("password")
	}
	if password == "" && profile.SecretRef != "" {
		stored, err := a.secretStore.Get(ctx, profile.SecretRef)
		if err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
			return nil, fmt.Errorf("load stored credential: %w", err)
		}
		password = strings.TrimSpace(stored)
	}

	timeout := a.cfg.GetDuration("timeout")

	session, err := know2.Dial(ctx, know2.Config{
		BaseURL:         baseURL,
		Username:        username,
		Password:        password,
		Admin:           opts.Admin || profile.Admin,
		ServiceUsername: a.cfg.GetString("service_username"),
		ServicePassword: a.cfg.GetString("service_password"),
		RequestTimeout:  timeout,
		Logger:          a.log,
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

func secretKeyForProfile(name string) string {
	return fmt.Sprintf(secretKeyPattern, name)
}

// persistActiveProfile writes the profile key into ~/.know2/config.toml,
// keeping whatever other settings the file already holds. Written through a
// temp file plus rename, like the profiles file.
func persistActiveProfile(name string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	dir := filepath.Join(homeDir, ".know2")
	path := filepath.Join(dir, "config.toml")

	settings := map[string]any{}
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read config file: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &settings); err != nil {
			return fmt.Errorf("decode config file: %w", err)
		}
	}
	settings["profile"] = name

	encoded, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".config-*.toml.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(encoded); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := temp.Chmod(0o600); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace config file: %w", err)
	}

	return nil
}
