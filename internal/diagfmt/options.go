package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeFull prints the path as stored in the FileSet.
	PathModeFull PathMode = iota
	// PathModeBasename prints only the file name.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	// Context — сколько строк исходника показать вокруг ошибки.
	Context   uint8
	ShowNotes bool
	// ShowHints добавляет подсказку «enable dialect X» для диагностик
	// с MissingDialect.
	ShowHints bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	Max              int // обрезка вывода, не Bag
	IncludeNotes     bool
}
