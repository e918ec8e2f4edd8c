package domain

// Marker is one clickable number on the play field. Next is the label that
// precedes it, kept for display and checks only.
type Marker struct {
	Label int
	Next  int
	X     int
	Y     int
}

// Rand is the subset of *rand.Rand used for placement.
type Rand interface {
	IntN(n int) int
}

// Generate places n markers at independent uniform positions inside a
// width x height field so that each size x size marker stays inside it.
// Markers are returned in drawing order, label n first. Overlaps are allowed.
func Generate(n, width, height, size int, rng Rand) []Marker {
	if n <= 0 {
		return []Marker{}
	}
	spanX := max(width-size, 0)
	spanY := max(height-size, 0)
	out := make([]Marker, 0, n)
	for label := n; label > 0; label-- {
		out = append(out, Marker{
			Label: label,
			Next:  label - 1,
			X:     rng.IntN(spanX + 1),
			Y:     rng.IntN(spanY + 1),
		})
	}
	return out
}
