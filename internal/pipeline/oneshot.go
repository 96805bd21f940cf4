package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultInputName is the regulation document looked for when no input is given.
const DefaultInputName = "ewha.pdf"

var ErrInputNotFound = errors.New("input not found")

// InputCandidates lists where the input is looked for, in order: the
// configured path when set, then DefaultInputName in dir and in its parent.
func InputCandidates(configured, dir string) []string {
	var out []string
	if strings.TrimSpace(configured) != "" {
		out = append(out, configured)
	}
	return append(out,
		filepath.Join(dir, DefaultInputName),
		filepath.Join(filepath.Dir(dir), DefaultInputName),
	)
}

// ResolveInput returns the first candidate that is an existing regular file.
func ResolveInput(configured, dir string) (string, error) {
	candidates := InputCandidates(configured, dir)
	for _, path := range candidates {
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrInputNotFound, strings.Join(candidates, ", "))
}
