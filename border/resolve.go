package border

// Resolve returns list[i], the last element when i is past the end, or def when list is empty.
// Glyphs and colors share this fallback.
func Resolve[T any](list []T, i int, def T) T {
	if len(list) == 0 {
		return def
	}
	if i < 0 {
		return list[0]
	}
	if i >= len(list) {
		return list[len(list)-1]
	}
	return list[i]
}
