package port

// Stripper removes comments from the full text of a file.
type Stripper interface {
	Strip(content string) string
}
