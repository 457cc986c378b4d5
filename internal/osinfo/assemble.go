package osinfo

// assemble maps every raw record to its output record, keeping OS order.
// The result shares no memory with raw.
func assemble[R, T any](raw []R, normalize func(R) T) []T {
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		out = append(out, normalize(r))
	}
	return out
}
