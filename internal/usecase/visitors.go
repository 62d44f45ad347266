package usecase

import (
	"sort"
	"strings"

	"weddingplanner/internal/domain"
)

// DedupeVisitors keeps one entry per case-insensitive name, the one with the latest
// timestamp, and returns them newest first. On equal timestamps the earlier entry wins and
// relative order is preserved.
func DedupeVisitors(log []domain.Viewer) []domain.Viewer {
	out := make([]domain.Viewer, 0, len(log))
	index := make(map[string]int, len(log))
	for _, v := range log {
		key := strings.ToLower(v.Name)
		i, ok := index[key]
		if !ok {
			index[key] = len(out)
			out = append(out, v)
			continue
		}
		if v.Timestamp.After(out[i].Timestamp) {
			out[i] = v
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Timestamp.After(out[b].Timestamp)
	})
	return out
}
