package theme

// Overlap records a key written by two fragments. FromIndex is the fragment
// whose value was replaced, ToIndex the one that replaced it.
type Overlap struct {
	Key       string
	FromIndex int
	ToIndex   int
}

type ComposeOptions struct {
	CheckOverlap bool
}

type Composition struct {
	Colors   map[string]string
	Overlaps []Overlap
}

// Compose merges fragments in order. Later fragments win on a key collision;
// collisions are only reported, never rejected.
func Compose(fragments []map[string]string, opts ComposeOptions) Composition {
	size := 0
	for _, f := range fragments {
		size += len(f)
	}

	colors := make(map[string]string, size)
	var owner map[string]int
	if opts.CheckOverlap {
		owner = make(map[string]int, size)
	}

	var overlaps []Overlap
	for i, f := range fragments {
		for _, key := range sortedKeys(f) {
			if opts.CheckOverlap {
				if prev, ok := owner[key]; ok {
					overlaps = append(overlaps, Overlap{Key: key, FromIndex: prev, ToIndex: i})
				}
				owner[key] = i
			}
			colors[key] = f[key]
		}
	}

	return Composition{Colors: colors, Overlaps: overlaps}
}
