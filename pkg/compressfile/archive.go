// Package compressfile registers parsers for compressed files and archives.
// Every archive is expanded into a temporary directory and each member is
// parsed again by the parser registered for its own file type, so a
// words.txt.gz or a zip of HTML pages yields plain text.
package compressfile

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"wordsearch/internal"
	"wordsearch/pkg/logger"
)

// extractFunc fills dir with the members of an archive and returns how many
// files it wrote.
type extractFunc func(dir string) (int, error)

// expandAndWalk runs extract in a fresh temporary directory, parses every
// file found there and joins the texts with newlines. The directory is
// removed before returning.
func expandAndWalk(kind string, extract extractFunc) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", kind+"_extract_")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)
	logger.DebugLogger.Printf("%s: extracting into %s", kind, tmpDir)

	n, err := extract(tmpDir)
	if err != nil {
		return nil, err
	}
	logger.Logger.Printf("%s: extracted %d files", kind, n)

	content, files, err := walkDir(tmpDir)
	if err != nil {
		return content, err
	}
	logger.Logger.Printf("%s: parsed %d files", kind, files)
	return content, nil
}

// sanitizePath strips absolute roots and ".." so archive members cannot
// escape the extraction directory.
func sanitizePath(name string) string {
	cleaned := strings.TrimPrefix(filepath.Join("/", filepath.FromSlash(name)), string(filepath.Separator))
	if cleaned != name {
		logger.DebugLogger.Printf("member path %q rewritten to %q", name, cleaned)
	}
	return cleaned
}

// memberPath returns where an archive member named name lands under dir.
func memberPath(dir, name string) string {
	return filepath.Join(dir, sanitizePath(name))
}

// writeMember copies r to path, creating parent directories.
func writeMember(r io.Reader, path string, mode fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	if mode&0o600 != 0o600 {
		mode |= 0o600
	}
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// strippedName drops suffix from the base of filePath, falling back to
// fallback when nothing is left.
func strippedName(filePath, suffix, fallback string) string {
	base := filepath.Base(filePath)
	if strings.HasSuffix(strings.ToLower(base), suffix) {
		base = base[:len(base)-len(suffix)]
	}
	if base == "" || base == "." {
		return fallback
	}
	return base
}

// walkDir parses every regular file under dir in lexical order. Members
// that fail to parse are logged and skipped, as are binary members of
// unknown type.
func walkDir(dir string) ([]byte, int, error) {
	var buf bytes.Buffer
	var files int

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		name := strings.TrimPrefix(path, dir)
		logger.DebugLogger.Printf("parsing archive member %s", name)
		content, err := internal.ParseFile(path)
		if err != nil {
			logger.Logger.Printf("skipping archive member %s: %v", name, err)
			return nil
		}
		if internal.DetectFileType(path) == internal.FileTypeUnknown && isBinary(content) {
			logger.DebugLogger.Printf("skipping binary archive member %s", name)
			return nil
		}
		files++
		if len(content) == 0 {
			return nil
		}
		buf.Write(content)
		if content[len(content)-1] != '\n' {
			buf.WriteByte('\n')
		}
		return nil
	})

	return buf.Bytes(), files, err
}

// isBinary reports whether raw bytes cannot be text: invalid UTF-8 or NULs.
func isBinary(content []byte) bool {
	return !utf8.Valid(content) || bytes.IndexByte(content, 0) >= 0
}
