package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/parser"
	"volt/internal/source"
	"volt/internal/token"
)

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// ParseDirResult содержит результат парсинга одного файла
type ParseDirResult struct {
	Path   string
	FileID source.FileID
	AST    *ast.File
	Bag    *diag.Bag
}

var sourceExts = map[string]bool{
	".js":  true,
	".jsx": true,
	".mjs": true,
	".cjs": true,
}

// ListSourceFiles возвращает отсортированный список исходников в директории.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// node_modules и скрытые каталоги не наши
			name := d.Name()
			if name == "node_modules" || (strings.HasPrefix(name, ".") && path != dir) {
				return filepath.SkipDir
			}
			return nil
		}
		if sourceExts[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все исходники в директории параллельно.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSet(), nil, nil
	}

	fileSet, fileIDs, loadErrors := preloadFiles(files)

	if maxDiagnostics <= 0 {
		maxDiagnostics = defaultMaxDiagnostics
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			if loadErr, failed := loadErrors[path]; failed {
				reportLoadError(bag, loadErr)
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)
			lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

			var tokens []token.Token
			for {
				tok := lx.Next()
				tokens = append(tokens, tok)
				if tok.Kind == token.EOF {
					break
				}
			}

			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: tokens,
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// ParseDir парсит все исходники в директории параллельно. Cache может
// быть nil; с ним файлы, чей хеш совпал, пропускаются с диагностиками
// из кеша.
func ParseDir(ctx context.Context, dir string, cfg Config, jobs int, cache *DiskCache) (*source.FileSet, []ParseDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSet(), nil, nil
	}

	fileSet, fileIDs, loadErrors := preloadFiles(files)

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(cfg.maxDiagnostics())
			if loadErr, failed := loadErrors[path]; failed {
				reportLoadError(bag, loadErr)
				results[i] = ParseDirResult{Path: path, Bag: bag}
				cfg.notify(FileEvent{Path: path, Status: StatusError})
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)
			cfg.notify(FileEvent{Path: path, Status: StatusParsing})

			// кеш: при совпадении хеша AST не перестраиваем
			if cache != nil {
				if cached, ok := cache.Load(file, cfg); ok {
					cached.Restore(bag, fileID)
					results[i] = ParseDirResult{Path: path, FileID: fileID, Bag: bag}
					cfg.notify(FileEvent{Path: path, Status: fileStatus(bag), Cached: true})
					return nil
				}
			}

			opts, err := cfg.parserOptions(path)
			if err != nil {
				return err
			}
			lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
			res := parser.ParseFile(fileSet, lx, bag, opts)

			if cache != nil {
				// ошибка записи кеша не должна ломать разбор
				_ = cache.Store(file, cfg, bag)
			}

			results[i] = ParseDirResult{
				Path:   path,
				FileID: fileID,
				AST:    res.File,
				Bag:    bag,
			}
			cfg.notify(FileEvent{Path: path, Status: fileStatus(bag)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func preloadFiles(files []string) (*source.FileSet, map[string]source.FileID, map[string]error) {
	fileSet := source.NewFileSet()
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	return fileSet, fileIDs, loadErrors
}

func reportLoadError(bag *diag.Bag, err error) {
	bag.Add(diag.ErrLoadFile.New(source.Span{}, source.Position{}, diag.Details{"err": err}))
}

func (cfg Config) notify(ev FileEvent) {
	if cfg.Progress != nil {
		cfg.Progress(ev)
	}
}

func fileStatus(bag *diag.Bag) FileStatus {
	if bag.HasErrors() {
		return StatusError
	}
	return StatusDone
}
