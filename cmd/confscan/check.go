package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/confkit/confscan/confscan"
)

func checkCommand(args []string) error {
	if len(args) == 0 {
		return errors.New("confscan check: path required")
	}

	files, err := collectConfigFiles(args)
	if err != nil {
		return err
	}

	diagnostics := 0
	for _, path := range files {
		n, err := checkFile(path)
		if err != nil {
			return err
		}
		diagnostics += n
	}

	if diagnostics > 0 {
		return fmt.Errorf("confscan check: %d diagnostic(s)", diagnostics)
	}
	return nil
}

func checkFile(path string) (int, error) {
	s, err := confscan.Open(path)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	sources := make(map[string]string)
	diagnostics := 0
	for {
		tok := s.Next()
		switch tok.Kind {
		case confscan.KindEOF:
			return diagnostics, nil
		case confscan.KindError:
			diagnostics++
			scanErr := s.Err()
			fmt.Println(diagStyle.Render(scanErr.Error()))
			if frame := scanErr.Frame(sourceFor(sources, scanErr.File)); frame != "" {
				fmt.Println(frame)
			}
		case confscan.KindGarbage:
			diagnostics++
			fmt.Println(diagStyle.Render(fmt.Sprintf("%s:%d: unexpected character %q", tok.Path, tok.Line, tok.Byte)))
		}
	}
}

func sourceFor(cache map[string]string, path string) string {
	if src, ok := cache[path]; ok {
		return src
	}
	data, err := os.ReadFile(path)
	if err != nil {
		cache[path] = ""
		return ""
	}
	cache[path] = string(data)
	return cache[path]
}

func collectConfigFiles(targets []string) ([]string, error) {
	seen := make(map[string]struct{})
	files := make([]string, 0)
	addFile := func(path string) {
		if filepath.Ext(path) != ".cfg" {
			return
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return
		}
		if _, ok := seen[abs]; ok {
			return
		}
		seen[abs] = struct{}{}
		files = append(files, abs)
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", target, err)
		}
		if !info.IsDir() {
			// explicit files are checked whatever their extension
			abs, err := filepath.Abs(target)
			if err != nil {
				return nil, fmt.Errorf("resolve %s: %w", target, err)
			}
			if _, ok := seen[abs]; !ok {
				seen[abs] = struct{}{}
				files = append(files, abs)
			}
			continue
		}
		err = filepath.WalkDir(target, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if entry.IsDir() {
				return nil
			}
			addFile(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", target, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
