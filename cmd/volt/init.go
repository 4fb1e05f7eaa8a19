package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new volt project",
	Long: `Initialize a new volt project by creating a project manifest (volt.toml)
and a hello-world entry point (main.js). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Resolve target directory
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return fmt.Errorf("failed to stat %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q exists and is not a directory", target)
	}

	name := projectNameFrom(filepath.Base(target))

	manifestPath := filepath.Join(target, "volt.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%s already exists", manifestPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %q: %w", manifestPath, err)
	}

	manifest := fmt.Sprintf("[package]\nname = %q\n\n[parse]\ndialects = []\n", name)
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", manifestPath, err)
	}

	entryPath := filepath.Join(target, "main.js")
	if _, err := os.Stat(entryPath); errors.Is(err, os.ErrNotExist) {
		entry := "console.log(\"hello from " + name + "\");\n"
		if err := os.WriteFile(entryPath, []byte(entry), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", entryPath, err)
		}
	}

	fmt.Fprintf(os.Stdout, "initialized %s\n", name)
	fmt.Fprintf(os.Stdout, "  - volt.toml\n")
	fmt.Fprintf(os.Stdout, "  - main.js\n")
	return nil
}

// projectNameFrom нормализует имя каталога до пригодного имени пакета.
func projectNameFrom(base string) string {
	name := strings.TrimSpace(strings.ToLower(base))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '.':
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-_")
	if out == "" {
		return "volt-project"
	}
	return out
}
