package atg

// Render is the free-function form of Text.Render, kept alongside Parse
// as the named entry-point pair for the package (spec.md §4.5).
func Render(d Dialect, t Text) string {
	return t.Render(d)
}
