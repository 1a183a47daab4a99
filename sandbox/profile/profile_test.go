package profile_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	pkgerrors "lrungo/pkg/errors"
	"lrungo/sandbox/option"
	"lrungo/sandbox/profile"
)

const profileYAML = `profiles:
  - name: minimal
    options:
      max_cpu_time: 1
      network: false
      env:
        PATH: /bin
  - name: build
    options:
      max_cpu_time: 30
`

func writeProfiles(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	if err := os.WriteFile(path, []byte(profileYAML), 0644); err != nil {
		t.Fatalf("write profiles failed: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	profiles, err := profile.LoadFile(writeProfiles(t))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	if profiles[0].Name != "minimal" || profiles[1].Name != "build" {
		t.Fatalf("unexpected profile names: %+v", profiles)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := profile.LoadFile("/nonexistent/profiles.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRepositoryLookup(t *testing.T) {
	profiles, err := profile.LoadFile(writeProfiles(t))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	repo := profile.NewLocalRepository(profiles)

	prof, err := repo.GetProfile(context.Background(), "minimal")
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	if prof.Name != "minimal" {
		t.Fatalf("expected minimal, got %s", prof.Name)
	}

	if _, err := repo.GetProfile(context.Background(), "missing"); !pkgerrors.Is(err, pkgerrors.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}

	names := repo.ListProfiles(context.Background())
	if !reflect.DeepEqual(names, []string{"build", "minimal"}) {
		t.Fatalf("expected sorted names, got %v", names)
	}
}

func TestProfilePartialMerges(t *testing.T) {
	profiles, err := profile.LoadFile(writeProfiles(t))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	repo := profile.NewLocalRepository(profiles)
	prof, err := repo.GetProfile(context.Background(), "minimal")
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}

	set, err := option.Merge(prof.Partial())
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if v, _ := set.Get(option.MaxCPUTime); v != 1 {
		t.Fatalf("expected max_cpu_time 1, got %v", v)
	}
	if v, _ := set.Get(option.Network); v != false {
		t.Fatalf("expected network false, got %v", v)
	}
	envValue, _ := set.Get(option.Env)
	want := []interface{}{option.Pair{First: "PATH", Second: "/bin"}}
	if !reflect.DeepEqual(envValue, want) {
		t.Fatalf("expected env pairs %v, got %v", want, envValue)
	}
}
