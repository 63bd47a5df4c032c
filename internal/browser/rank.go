package browser

import (
	"sort"

	"github.com/mveld/burrow/internal/fuzzy"
)

// Result is one ranked entry in machine-readable form, for the headless
// JSON mode.
type Result struct {
	Path  string `json:"path"`
	Score int    `json:"score"`
	Name  string `json:"name"`
	IsDir bool   `json:"is_dir"`
}

// Rank computes the ranked listing for dir filtered by query without any
// interactive session: the same snapshot, match and sort pipeline the
// browser uses, capped at limit results. A limit <= 0 means no cap.
func Rank(dir, query string, limit int) ([]Result, error) {
	entries, err := ReadSnapshot(dir)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(entries))
	for _, entry := range entries {
		if m, ok := fuzzy.Find(query, entry.Name); ok {
			results = append(results, Result{
				Path:  entry.Path,
				Score: m.Score,
				Name:  entry.Name,
				IsDir: entry.IsDir,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
