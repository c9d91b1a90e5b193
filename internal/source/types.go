package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, repl).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File captures metadata and content for a single source file.
// Content is never mutated after the file is added to a FileSet.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
// Both fields are 1-based, as in editors and compiler messages. Col counts
// bytes from the start of the line, so Col-1 is the byte offset from the
// most recent newline; ColOffset returns that 0-based form.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// ColOffset returns the 0-based byte offset of p from the start of its line.
func (p LineCol) ColOffset() uint32 {
	if p.Col == 0 {
		return 0
	}
	return p.Col - 1
}

// Less reports whether p comes strictly before other.
func (p LineCol) Less(other LineCol) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}
