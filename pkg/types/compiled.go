package types

// CompiledFile is the result of expanding one file
type CompiledFile struct {
	// Input is the absolute path of the expanded file
	Input string
	// Includes holds the absolute paths of every file pulled in, directly
	// or through nested includes, in the order they were reached
	Includes []string
	// Content is the fully expanded text
	Content string
	// Unresolved holds show variables that were not found in the context
	Unresolved []string
}
