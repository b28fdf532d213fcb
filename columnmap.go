package dlx

// columnMap is per-column scratch state, indexed directly by columnID
// (entry 0 belongs to the root and is unused by the Builder).
type columnMap[T any] []T

func newColumnMap[T any](a *arena) columnMap[T] {
	return make(columnMap[T], len(a.headers))
}
