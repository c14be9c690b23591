package toml

import (
	"fmt"

	"github.com/yakov-partners/know2-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Profiles []profileSchema `toml:"profiles"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profiles schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type profileSchema struct {
	Name      string `toml:"name"`
	BaseURL   string `toml:"base_url"`
	Username  string `toml:"username,omitempty"`
	SecretRef string `toml:"secret_ref,omitempty"`
	Admin     bool   `toml:"admin,omitempty"`
}

func toSchema(profile domain.Profile) profileSchema {
	return profileSchema{
		Name:      profile.Name,
		BaseURL:   profile.BaseURL,
		Username:  profile.Username,
		SecretRef: profile.SecretRef,
		Admin:     profile.Admin,
	}
}

func (s profileSchema) toDomain() domain.Profile {
	return domain.Profile{
		Name:      s.Name,
		BaseURL:   s.BaseURL,
		Username:  s.Username,
		SecretRef: s.SecretRef,
		Admin:     s.Admin,
	}
}
