package icons

const (
	// Opaque is the opacity of the icon matching the current condition.
	Opaque = 1.0
	// Transparent is the opacity of every other icon.
	Transparent = 0.0
)

// Select maps each id to Opaque when it equals target and Transparent
// otherwise. When no id matches, every id is Transparent.
func Select(ids []string, target string) map[string]float64 {
	out := make(map[string]float64, len(ids))
	for _, id := range ids {
		if id == target {
			out[id] = Opaque
			continue
		}
		out[id] = Transparent
	}
	return out
}
