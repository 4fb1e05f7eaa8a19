package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"volt/internal/source"
	"volt/internal/token"
)

type TokenOutput struct {
	Kind          string      `json:"kind"`
	Text          string      `json:"text,omitempty"`
	Span          source.Span `json:"span"`
	NewlineBefore bool        `json:"newline_before,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
		if tok.NewlineBefore {
			fmt.Fprint(w, " (newline before)")
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:          tok.Kind.String(),
			Text:          tok.Text,
			Span:          tok.Span,
			NewlineBefore: tok.NewlineBefore,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
