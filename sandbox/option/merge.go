package option

import (
	"sort"

	appErr "lrungo/pkg/errors"
)

// Merge folds partials left-to-right into a fresh Set. Each partial may be:
//
//   - nil, skipped entirely
//   - a Partial, map[Name]interface{} or map[string]interface{}, applied in
//     sorted key order
//   - a *Set from a previous Merge, applied in its stored order
//
// Within a partial, a nil value deletes the key from the accumulator. Multi
// values are normalized to a flat element sequence and appended to whatever
// the accumulator already holds; Single and unknown keys overwrite. Anything
// else is a TypeMismatch error naming the offending position.
func Merge(partials ...interface{}) (*Set, error) {
	acc := &Set{values: make(map[Name]interface{})}
	for i, partial := range partials {
		if partial == nil {
			continue
		}
		switch p := partial.(type) {
		case *Set:
			if p == nil {
				continue
			}
			for _, name := range p.order {
				acc.apply(name, p.values[name])
			}
		case Partial:
			applySorted(acc, p)
		case map[Name]interface{}:
			applySorted(acc, p)
		case map[string]interface{}:
			converted := make(Partial, len(p))
			for k, v := range p {
				converted[Name(k)] = v
			}
			applySorted(acc, converted)
		default:
			return nil, appErr.Newf(appErr.TypeMismatch,
				"options should be a mapping, got %T at position %d", partial, i).
				WithDetail("position", i)
		}
	}
	return acc, nil
}

// MustMerge merges typed partials, which cannot produce a TypeMismatch.
func MustMerge(partials ...Partial) *Set {
	args := make([]interface{}, len(partials))
	for i, p := range partials {
		args[i] = p
	}
	set, err := Merge(args...)
	if err != nil {
		panic(err)
	}
	return set
}

func applySorted(acc *Set, p map[Name]interface{}) {
	names := make([]Name, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	for _, name := range names {
		acc.apply(name, p[name])
	}
}

func (s *Set) apply(name Name, value interface{}) {
	if value == nil {
		s.remove(name)
		return
	}
	if CardinalityOf(name) == Multi {
		elems := normalizeMulti(value)
		existing, ok := s.values[name].([]interface{})
		if !ok {
			s.order = append(s.order, name)
			existing = nil
		}
		s.values[name] = append(existing, elems...)
		return
	}
	if _, ok := s.values[name]; !ok {
		s.order = append(s.order, name)
	}
	s.values[name] = value
}

func (s *Set) remove(name Name) {
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	kept := s.order[:0]
	for _, n := range s.order {
		if n != name {
			kept = append(kept, n)
		}
	}
	s.order = kept
}

// normalizeMulti flattens a Multi value into its element sequence: scalars
// become one-element sequences, mappings become Pair sequences in sorted key
// order, and existing sequences are copied as-is.
func normalizeMulti(value interface{}) []interface{} {
	switch v := value.(type) {
	case []interface{}:
		out := make([]interface{}, len(v))
		copy(out, v)
		return out
	case []Pair:
		out := make([]interface{}, len(v))
		for i, p := range v {
			out[i] = p
		}
		return out
	case []string:
		out := make([]interface{}, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case []int:
		out := make([]interface{}, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]interface{}, 0, len(v))
		for _, k := range keys {
			out = append(out, Pair{First: k, Second: v[k]})
		}
		return out
	case map[string]string:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]interface{}, 0, len(v))
		for _, k := range keys {
			out = append(out, Pair{First: k, Second: v[k]})
		}
		return out
	case Pair:
		return []interface{}{v}
	default:
		return []interface{}{v}
	}
}
