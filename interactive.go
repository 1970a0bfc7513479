package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	gitignore "github.com/monochromegane/go-gitignore"
)

// findMulti is the finder used by pickSources; tests replace it.
var findMulti = fuzzyfinder.FindMulti

// loadIgnoreMatcher parses root/.gitignore. It returns nil when the file does
// not exist.
func loadIgnoreMatcher(root string) (gitignore.IgnoreMatcher, error) {
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	matcher, err := gitignore.NewGitIgnore(path, root)
	if err != nil {
		return nil, fmt.Errorf("could not parse .gitignore file %s: %w", path, err)
	}
	return matcher, nil
}

// listCandidates walks root and returns every regular, non-hidden file
// below it. Hidden directories are not entered, and neither is anything
// ignore matches. A nil ignore offers everything.
func listCandidates(root string, ignore gitignore.IgnoreMatcher) ([]string, error) {
	var candidates []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Unreadable entries are simply not offered
		}
		if path == root {
			return nil
		}
		if isHidden(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if ignore != nil && ignore.Match(path, d.IsDir()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning %s for files: %w", root, err)
	}
	return candidates, nil
}

// pickSources lets the user choose files below root with a fuzzy finder.
// Files matched by root/.gitignore are left out unless noIgnore is set.
// Leaving the finder returns errSelectionAborted.
func pickSources(root string, noIgnore bool, logger verboseLogger) ([]string, error) {
	var ignore gitignore.IgnoreMatcher
	if !noIgnore {
		matcher, err := loadIgnoreMatcher(root)
		if err != nil {
			logger.Printf("Warning: %v\n", err)
		} else if matcher != nil {
			logger.Printf("Filtering candidates with %s\n", filepath.Join(root, ".gitignore"))
			ignore = matcher
		}
	}

	candidates, err := listCandidates(root, ignore)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no files found under %s to select from", root)
	}

	idx, err := findMulti(
		candidates,
		func(i int) string {
			return candidates[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select files to count. Press Tab to multi-select, Enter to confirm."
			}
			info, statErr := os.Stat(candidates[i])
			if statErr != nil {
				return fmt.Sprintf("Path: %s\nError getting info: %v", candidates[i], statErr)
			}
			return fmt.Sprintf("Path: %s\nSize: %d bytes", candidates[i], info.Size())
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, errSelectionAborted
		}
		return nil, fmt.Errorf("fuzzy finder error: %w", err)
	}

	picked := make([]string, len(idx))
	for i, index := range idx {
		picked[i] = candidates[index]
	}
	return picked, nil
}

// isHidden reports whether a base name starts with '.'.
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return len(name) > 0 && name[0] == '.'
}
