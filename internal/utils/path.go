package utils

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// PathResolver locates data files relative to the places the binary is usually run from
type PathResolver struct {
	executableDir string
	configDir     string
}

// NewPathResolver creates a resolver rooted at the running executable and configDir
func NewPathResolver(configDir string) (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	// Resolve any symlinks to get the actual binary location
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		configDir:     configDir,
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, configDir)
	return pr, nil
}

// Candidates lists the places a data file is looked for, in order:
// 1. The path itself when absolute
// 2. Relative to the current working directory
// 3. Relative to the executable directory
// 4. The config directory
func (pr *PathResolver) Candidates(path string) []string {
	if filepath.IsAbs(path) {
		return []string{path}
	}
	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, path))
	}
	candidates = append(candidates, filepath.Join(pr.executableDir, path))
	if pr.configDir != "" {
		candidates = append(candidates,
			filepath.Join(pr.configDir, path),
			filepath.Join(pr.configDir, filepath.Base(path)),
		)
	}
	return candidates
}

// ResolveDataFile returns the first existing regular file among the candidates.
// When none exists the first candidate is returned for error reporting.
func (pr *PathResolver) ResolveDataFile(path string) (string, error) {
	candidates := pr.Candidates(path)
	for _, candidate := range candidates {
		if stat, err := os.Stat(candidate); err == nil && stat.Mode().IsRegular() {
			log.Debugf("Found data file: %s", candidate)
			return candidate, nil
		}
		log.Debugf("Data file candidate not found: %s", candidate)
	}
	return candidates[0], os.ErrNotExist
}
