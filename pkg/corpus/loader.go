// Package corpus reads training text from disk.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

var (
	// ErrEmptyPath is returned when no corpus path was configured.
	ErrEmptyPath = errors.New("corpus path is empty")
	// ErrNoFiles is returned for a directory without regular files.
	ErrNoFiles = errors.New("no corpus files found")
)

// FileInfo describes one corpus file.
type FileInfo struct {
	Path  string
	Size  int64
	Valid bool
}

// Load returns the training text found at path.
// A file is read whole. A directory has its regular files read in filename
// order and joined by newlines; subdirectories are skipped.
func Load(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrEmptyPath
	}

	stat, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat corpus %s: %w", path, err)
	}
	if !stat.IsDir() {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read corpus %s: %w", path, err)
		}
		log.Debugf("Loaded corpus file %s (%d bytes)", path, len(data))
		return string(data), nil
	}

	files, err := ListFiles(path)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%s: %w", path, ErrNoFiles)
	}

	var b strings.Builder
	for i, f := range files {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return "", fmt.Errorf("failed to read corpus file %s: %w", f.Path, err)
		}
		if !utf8.Valid(data) {
			log.Warnf("Corpus file %s is not valid UTF-8, non-ASCII bytes will be dropped", f.Path)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.Write(data)
	}
	log.Debugf("Loaded %d corpus files from %s (%d bytes)", len(files), path, b.Len())
	return b.String(), nil
}

// ListFiles returns the regular files in dir sorted by name.
func ListFiles(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan corpus dir %s: %w", dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			log.Warnf("Skipping corpus file %s: %v", entry.Name(), err)
			continue
		}
		path := filepath.Join(dir, entry.Name())
		files = append(files, FileInfo{
			Path:  path,
			Size:  info.Size(),
			Valid: ValidateText(path) == nil,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files, nil
}

// ValidateText checks that path is a readable, non-empty UTF-8 text file.
func ValidateText(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	buffer := make([]byte, 4096)
	n, err := file.Read(buffer)
	if err != nil {
		return fmt.Errorf("failed to read from text file %s: %w", path, err)
	}
	// a multi-byte rune may be cut at the buffer end
	chunk := buffer[:n]
	for i := 0; i < utf8.UTFMax && len(chunk) > 0 && !utf8.Valid(chunk); i++ {
		chunk = chunk[:len(chunk)-1]
	}
	if len(chunk) == 0 || !utf8.Valid(chunk) {
		return fmt.Errorf("text file %s is not valid UTF-8", path)
	}

	log.Debugf("Text file %s validated", path)
	return nil
}
