package driver

import (
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/source"
	"volt/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize прогоняет файл через лексер и собирает все токены до EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource токенизирует содержимое без обращения к диску.
func TokenizeSource(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeLoaded(fs, fileID, maxDiagnostics)
}

func tokenizeLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	if maxDiagnostics <= 0 {
		maxDiagnostics = defaultMaxDiagnostics
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
