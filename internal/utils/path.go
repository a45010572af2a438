package utils

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// CorpusResolver finds corpus files relative to the places a user is likely
// to keep them.
type CorpusResolver struct {
	executableDir string
	configDir     string
	workDir       string
}

// NewCorpusResolver creates a resolver anchored at the running executable,
// the config directory and the current working directory.
func NewCorpusResolver(configDir string) *CorpusResolver {
	cr := &CorpusResolver{configDir: configDir}

	if execPath, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
			execPath = resolved
		}
		cr.executableDir = filepath.Dir(execPath)
	}
	if cwd, err := os.Getwd(); err == nil {
		cr.workDir = cwd
	}

	log.Debugf("CorpusResolver initialized: execDir=%s, configDir=%s, cwd=%s",
		cr.executableDir, cr.configDir, cr.workDir)
	return cr
}

// Candidates lists the locations tried for path, most preferred first.
func (cr *CorpusResolver) Candidates(path string) []string {
	if filepath.IsAbs(path) {
		return []string{path}
	}

	var candidates []string
	for _, base := range []string{cr.workDir, cr.executableDir, cr.configDir} {
		if base != "" {
			candidates = append(candidates, filepath.Join(base, path))
		}
	}
	return candidates
}

// Resolve returns the first candidate that exists. When none does the
// path is returned unchanged so the caller reports the error against it.
func (cr *CorpusResolver) Resolve(path string) string {
	if path == "" {
		return ""
	}
	for _, candidate := range cr.Candidates(path) {
		if FileExists(candidate) {
			log.Debugf("Resolved corpus %s to %s", path, candidate)
			return candidate
		}
		log.Debugf("Corpus candidate not found: %s", candidate)
	}
	return path
}
