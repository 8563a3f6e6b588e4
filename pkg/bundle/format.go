package bundle

// Format identifies a bundle representation a Provider may attempt.
type Format string

const (
	// FormatCompiled resolves the bundle name to a constructible type
	// registered within the scope.
	FormatCompiled Format = "compiled-type"

	// FormatTextual resolves the bundle name to a key/value resource decoded
	// from a byte stream.
	FormatTextual Format = "textual"
)

func (f Format) recognized() bool {
	return f == FormatCompiled || f == FormatTextual
}
