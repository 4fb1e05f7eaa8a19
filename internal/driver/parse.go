package driver

import (
	"path/filepath"
	"strings"

	"fortio.org/safecast"

	"volt/internal/ast"
	"volt/internal/dialect"
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/parser"
	"volt/internal/source"
)

// Config задаёт режим разбора на уровне драйвера.
type Config struct {
	// SourceType пустой — выводим из расширения (.mjs — модуль,
	// .cjs — скрипт), иначе "module"/"script".
	SourceType string
	Dialects   dialect.Set
	// AutoJSX включает диалект jsx для *.jsx файлов поверх Dialects.
	AutoJSX                    bool
	AllowReturnOutsideFunction bool
	MaxDiagnostics             int
	// Progress, если задан, получает события по каждому файлу при
	// ParseDir. Вызывается из воркеров, реализация должна быть
	// потокобезопасной.
	Progress func(FileEvent)
}

// FileStatus describes where a file is in the ParseDir pipeline.
type FileStatus uint8

const (
	StatusQueued FileStatus = iota
	StatusParsing
	StatusDone
	StatusError
)

func (s FileStatus) String() string {
	switch s {
	case StatusParsing:
		return "parsing"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return "queued"
	}
}

// FileEvent is one progress notification from ParseDir.
type FileEvent struct {
	Path   string
	Status FileStatus
	Cached bool
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	AST     *ast.File
	Bag     *diag.Bag
}

// defaultMaxDiagnostics действует, когда Config не задаёт лимит:
// нулевой конфиг обязан отдавать диагностику, а не молчать.
const defaultMaxDiagnostics = 100

func (cfg Config) maxDiagnostics() int {
	if cfg.MaxDiagnostics <= 0 {
		return defaultMaxDiagnostics
	}
	return cfg.MaxDiagnostics
}

// Parse загружает файл с диска и разбирает его целиком.
func Parse(path string, cfg Config) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fileID, path, cfg)
}

// ParseSource разбирает содержимое без обращения к диску (stdin, тесты).
func ParseSource(name string, content []byte, cfg Config) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseLoaded(fs, fileID, name, cfg)
}

func parseLoaded(fs *source.FileSet, fileID source.FileID, path string, cfg Config) (*ParseResult, error) {
	file := fs.Get(fileID)
	bag := diag.NewBag(cfg.maxDiagnostics())

	opts, err := cfg.parserOptions(path)
	if err != nil {
		return nil, err
	}

	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	result := parser.ParseFile(fs, lx, bag, opts)

	return &ParseResult{
		FileSet: fs,
		File:    file,
		AST:     result.File,
		Bag:     result.Bag,
	}, nil
}

func (cfg Config) parserOptions(path string) (parser.Options, error) {
	maxErrors, err := safecast.Conv[uint](cfg.maxDiagnostics())
	if err != nil {
		return parser.Options{}, err
	}

	st := ast.Script
	switch cfg.SourceType {
	case "module":
		st = ast.Module
	case "script":
		st = ast.Script
	case "":
		if strings.EqualFold(filepath.Ext(path), ".mjs") {
			st = ast.Module
		}
	}

	dia := cfg.Dialects
	if cfg.AutoJSX && strings.EqualFold(filepath.Ext(path), ".jsx") {
		dia = dia.With(dialect.JSX)
	}

	return parser.Options{
		SourceType:                 st,
		Dialects:                   dia,
		AllowReturnOutsideFunction: cfg.AllowReturnOutsideFunction,
		MaxErrors:                  maxErrors,
	}, nil
}
