package profile

import (
	"context"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	appErr "lrungo/pkg/errors"
)

// LocalRepository serves profiles from memory.
type LocalRepository struct {
	profiles map[string]Profile
}

// NewLocalRepository creates a repository from a profile list. Unnamed
// entries are skipped; later duplicates win.
func NewLocalRepository(profiles []Profile) *LocalRepository {
	byName := make(map[string]Profile)
	for _, prof := range profiles {
		if prof.Name == "" {
			continue
		}
		byName[prof.Name] = prof
	}
	return &LocalRepository{profiles: byName}
}

// GetProfile returns a profile by name.
func (r *LocalRepository) GetProfile(ctx context.Context, name string) (Profile, error) {
	if name == "" {
		return Profile{}, appErr.ValidationError("profile", "required")
	}
	prof, ok := r.profiles[name]
	if !ok {
		return Profile{}, appErr.Newf(appErr.NotFound, "profile %q not found", name)
	}
	return prof, nil
}

// ListProfiles returns the known profile names, sorted.
func (r *LocalRepository) ListProfiles(ctx context.Context) []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type profileFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// LoadFile reads a YAML profile file.
func LoadFile(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, appErr.Wrapf(err, appErr.InvalidParams, "read profile file failed")
	}
	var parsed profileFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, appErr.Wrapf(err, appErr.InvalidParams, "parse profile file failed")
	}
	return parsed.Profiles, nil
}
