// Package profile loads named, reusable option partials.
package profile

import (
	"context"

	"lrungo/sandbox/option"
)

// Profile is a named option partial, typically shipped in a YAML file.
type Profile struct {
	Name    string                 `yaml:"name"`
	Options map[string]interface{} `yaml:"options"`
}

// Partial converts the profile's options into a mergeable partial.
func (p Profile) Partial() option.Partial {
	partial := make(option.Partial, len(p.Options))
	for k, v := range p.Options {
		partial[option.Name(k)] = v
	}
	return partial
}

// Repository loads profiles by name.
type Repository interface {
	GetProfile(ctx context.Context, name string) (Profile, error)
	ListProfiles(ctx context.Context) []string
}
