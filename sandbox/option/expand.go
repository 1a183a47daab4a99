package option

import "strings"

// Expand renders a merged set into lrun command-line tokens, in set order.
// Registry-unknown keys contribute nothing. Multi options emit one flag
// occurrence per accumulated element; Pair elements contribute both
// components as separate tokens, so a bindfs pair expands to
// "--bindfs SRC DST". The caller appends "--" and the command argv.
func Expand(s *Set) []string {
	if s.Len() == 0 {
		return nil
	}
	var args []string
	for _, name := range s.order {
		cardinality := CardinalityOf(name)
		if cardinality == Unknown {
			continue
		}
		flag := flagFor(name)
		value := s.values[name]
		if cardinality == Multi {
			elems, _ := value.([]interface{})
			for _, elem := range elems {
				if pair, ok := elem.(Pair); ok {
					args = append(args, flag, formatScalar(pair.First), formatScalar(pair.Second))
					continue
				}
				args = append(args, flag, formatScalar(elem))
			}
			continue
		}
		args = append(args, flag, formatScalar(value))
	}
	return args
}

func flagFor(name Name) string {
	return "--" + strings.ReplaceAll(string(name), "_", "-")
}
