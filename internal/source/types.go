package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// Position is a resolved human-readable location in a source file.
// Line is 1-based, Col is 0-based (editor convention for JS tooling),
// Offset is the absolute byte offset.
type Position struct {
	Line   uint32
	Col    uint32
	Offset uint32
}

// Before reports whether p precedes other. Позиции сравниваются по Offset.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}
