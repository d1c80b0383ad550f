package events

import (
	"sort"
	"strconv"
	"strings"
)

// idList renders a slice of ids as a sorted, comma-joined string, used
// throughout the pipeline events that list several affected ids.
func idList[T ~int64](ids []T) string {
	if len(ids) == 0 {
		return ""
	}
	vals := make([]int64, len(ids))
	for i, id := range ids {
		vals[i] = int64(id)
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}

func itoa(v int64) string  { return strconv.FormatInt(v, 10) }
func btoa(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
