package option_test

import (
	"reflect"
	"testing"

	pkgerrors "lrungo/pkg/errors"
	"lrungo/sandbox/option"
)

func mustMerge(t *testing.T, partials ...interface{}) *option.Set {
	t.Helper()
	set, err := option.Merge(partials...)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	return set
}

func TestMergeIdentity(t *testing.T) {
	if got := mustMerge(t).Len(); got != 0 {
		t.Fatalf("expected empty set, got %d keys", got)
	}
	if got := mustMerge(t, option.Partial{}).Len(); got != 0 {
		t.Fatalf("expected empty set from empty partial, got %d keys", got)
	}
	if got := mustMerge(t, nil, nil).Len(); got != 0 {
		t.Fatalf("expected nil partials to be skipped, got %d keys", got)
	}
}

func TestMergeOverride(t *testing.T) {
	set := mustMerge(t,
		option.Partial{option.UID: 1},
		option.Partial{option.UID: 3},
		option.Partial{option.UID: 4},
	)
	value, ok := set.Get(option.UID)
	if !ok || value != 4 {
		t.Fatalf("expected uid 4, got %v (present=%v)", value, ok)
	}
	if set.Len() != 1 {
		t.Fatalf("expected 1 key, got %d", set.Len())
	}
}

func TestMergeAccumulation(t *testing.T) {
	set := mustMerge(t,
		option.Partial{option.FD: []interface{}{4, 6}},
		option.Partial{option.FD: 5},
		option.Partial{option.FD: 7},
	)
	value, _ := set.Get(option.FD)
	want := []interface{}{4, 6, 5, 7}
	if !reflect.DeepEqual(value, want) {
		t.Fatalf("expected %v, got %v", want, value)
	}
}

func TestMergePairFlattening(t *testing.T) {
	set := mustMerge(t,
		option.Partial{option.Bindfs: map[string]string{"/a": "/b"}},
		option.Partial{option.Bindfs: map[string]string{"/c": "/d"}},
	)
	value, _ := set.Get(option.Bindfs)
	want := []interface{}{
		option.Pair{First: "/a", Second: "/b"},
		option.Pair{First: "/c", Second: "/d"},
	}
	if !reflect.DeepEqual(value, want) {
		t.Fatalf("expected %v, got %v", want, value)
	}
}

func TestMergeMapValueSortedKeys(t *testing.T) {
	set := mustMerge(t, option.Partial{option.Env: map[string]string{
		"PATH": "/bin",
		"HOME": "/root",
		"LANG": "C",
	}})
	value, _ := set.Get(option.Env)
	want := []interface{}{
		option.Pair{First: "HOME", Second: "/root"},
		option.Pair{First: "LANG", Second: "C"},
		option.Pair{First: "PATH", Second: "/bin"},
	}
	if !reflect.DeepEqual(value, want) {
		t.Fatalf("expected sorted pair order %v, got %v", want, value)
	}
}

func TestMergeDeletion(t *testing.T) {
	set := mustMerge(t,
		option.Partial{option.UID: 1000},
		option.Partial{option.UID: nil},
	)
	if set.Len() != 0 {
		t.Fatalf("expected empty set after deletion, got %d keys", set.Len())
	}

	set = mustMerge(t,
		option.Partial{option.FD: []interface{}{4, 5, 6}},
		option.Partial{option.FD: 7},
		option.Partial{option.FD: nil},
	)
	if set.Len() != 0 {
		t.Fatalf("expected empty set after multi deletion, got %d keys", set.Len())
	}

	// Deleting an absent key is a no-op.
	set = mustMerge(t, option.Partial{option.UID: nil})
	if set.Len() != 0 {
		t.Fatalf("expected empty set, got %d keys", set.Len())
	}
}

func TestMergeDeletionThenReadd(t *testing.T) {
	set := mustMerge(t,
		option.Partial{option.FD: []interface{}{4, 5}},
		option.Partial{option.FD: nil},
		option.Partial{option.FD: 6},
	)
	value, _ := set.Get(option.FD)
	want := []interface{}{6}
	if !reflect.DeepEqual(value, want) {
		t.Fatalf("expected %v after re-add, got %v", want, value)
	}
}

func TestMergeRejectsNonMapping(t *testing.T) {
	_, err := option.Merge(option.Partial{option.UID: 1}, "not a mapping")
	if err == nil {
		t.Fatal("expected TypeMismatch error")
	}
	if !pkgerrors.Is(err, pkgerrors.TypeMismatch) {
		t.Fatalf("expected TypeMismatch code, got %v", err)
	}
	typed := err.(*pkgerrors.Error)
	if typed.Details["position"] != 1 {
		t.Fatalf("expected offending position 1, got %v", typed.Details["position"])
	}
}

func TestMergeIdempotent(t *testing.T) {
	a := option.Partial{option.UID: 1, option.FD: []interface{}{4}}
	b := option.Partial{option.FD: 5, option.Chdir: "/tmp"}

	once := mustMerge(t, a, b)
	twice := mustMerge(t, once)

	if !reflect.DeepEqual(once.Names(), twice.Names()) {
		t.Fatalf("re-merge changed key order: %v vs %v", once.Names(), twice.Names())
	}
	for _, name := range once.Names() {
		v1, _ := once.Get(name)
		v2, _ := twice.Get(name)
		if !reflect.DeepEqual(v1, v2) {
			t.Fatalf("re-merge changed %s: %v vs %v", name, v1, v2)
		}
	}
}

func TestMergeUnknownKeysSurvive(t *testing.T) {
	set := mustMerge(t,
		option.Partial{option.Stdout: "/tmp/out"},
		option.Partial{"custom_key": "kept"},
	)
	if got := set.GetString(option.Stdout); got != "/tmp/out" {
		t.Fatalf("expected stdout passthrough, got %q", got)
	}
	if got := set.GetString("custom_key"); got != "kept" {
		t.Fatalf("expected unknown key to survive merge, got %q", got)
	}
}

func TestMergeStringKeyedMap(t *testing.T) {
	set := mustMerge(t, map[string]interface{}{"uid": 42})
	value, ok := set.Get(option.UID)
	if !ok || value != 42 {
		t.Fatalf("expected uid 42 from string-keyed map, got %v", value)
	}
}
