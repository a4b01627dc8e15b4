package validator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// compareChunkSize is the buffer size used when streaming file content.
const compareChunkSize = 4 << 10

// FileExists passes when a file or directory exists at the path.
// Stat errors other than "not exist" are returned as faults.
func FileExists(fs afero.Fs) Validator[string] {
	mustFs(fs)
	return NewFunc(
		"exists",
		func(path string) (bool, error) {
			return afero.Exists(fs, path)
		},
		template(`file or directory "`+Placeholder+`" does not exist`),
	)
}

// IsFile passes when the path is a regular file.
func IsFile(fs afero.Fs) Validator[string] {
	mustFs(fs)
	return NewFunc(
		"is a regular file",
		func(path string) (bool, error) {
			info, err := stat(fs, path)
			if err != nil || info == nil {
				return false, err
			}
			return info.Mode().IsRegular(), nil
		},
		template(`"`+Placeholder+`" is not a regular file`),
	)
}

// IsDirectory passes when the path is a directory.
func IsDirectory(fs afero.Fs) Validator[string] {
	mustFs(fs)
	return NewFunc(
		"is a directory",
		func(path string) (bool, error) {
			info, err := stat(fs, path)
			if err != nil || info == nil {
				return false, err
			}
			return info.IsDir(), nil
		},
		template(`"`+Placeholder+`" is not a directory`),
	)
}

// WithinPath passes when the path equals parent or lies beneath it.
// Paths are compared lexically after cleaning; the filesystem is not consulted.
func WithinPath(parent string) Validator[string] {
	parent = filepath.Clean(parent)
	prefix := parent
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return rule(
		fmt.Sprintf("is within path %q", parent),
		subjectf(`"%s" is not within path %q`, parent),
		func(path string) bool {
			path = filepath.Clean(path)
			return path == parent || strings.HasPrefix(path, prefix)
		},
	)
}

// MatchesGlob passes when the path matches a doublestar pattern such as
// "configs/**/*.yaml". Panics if pattern is malformed.
func MatchesGlob(pattern string) Validator[string] {
	if !doublestar.ValidatePattern(pattern) {
		panic(fmt.Errorf("validator: invalid glob pattern %q: %w", pattern, doublestar.ErrBadPattern))
	}
	return NewFunc(
		fmt.Sprintf("matches glob %q", pattern),
		func(path string) (bool, error) {
			return doublestar.Match(pattern, filepath.ToSlash(path))
		},
		subjectf(`"%s" does not match glob %q`, pattern),
	)
}

// SameContent passes when the file holds exactly expected.
func SameContent(fs afero.Fs, expected string) Validator[string] {
	mustFs(fs)
	return NewFunc(
		"has the expected content",
		func(path string) (bool, error) {
			content, err := afero.ReadFile(fs, path)
			if err != nil {
				return false, err
			}
			return string(content) == expected, nil
		},
		template(`"`+Placeholder+`" does not have the expected content`),
	)
}

// SameContentReader passes when the file content equals what expected yields.
// The reader is consumed by the first evaluation, so the validator is single use.
func SameContentReader(fs afero.Fs, expected io.Reader) Validator[string] {
	mustFs(fs)
	return NewFunc(
		"has the expected content",
		func(path string) (bool, error) {
			f, err := fs.Open(path)
			if err != nil {
				return false, err
			}
			defer f.Close()
			return sameStream(f, expected)
		},
		template(`"`+Placeholder+`" does not have the expected content`),
	)
}

// HasMIMEType passes when the detected content type of the file is one of
// types, e.g. "application/pdf" or "image/png".
func HasMIMEType(fs afero.Fs, types ...string) Validator[string] {
	mustFs(fs)
	shown := listString(types)
	return NewFunc(
		"has content type in "+shown,
		func(path string) (bool, error) {
			f, err := fs.Open(path)
			if err != nil {
				return false, err
			}
			defer f.Close()
			mt, err := mimetype.DetectReader(f)
			if err != nil {
				return false, err
			}
			for _, t := range types {
				if mt.Is(t) {
					return true, nil
				}
			}
			return false, nil
		},
		subjectf(`"%s" does not have content type in %s`, shown),
	)
}

// stat returns a nil FileInfo and nil error when the path does not exist.
func stat(fs afero.Fs, path string) (os.FileInfo, error) {
	info, err := fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return info, err
}

func sameStream(a, b io.Reader) (bool, error) {
	bufA := make([]byte, compareChunkSize)
	bufB := make([]byte, compareChunkSize)
	for {
		nA, errA := io.ReadFull(a, bufA)
		nB, errB := io.ReadFull(b, bufB)
		if err := readErr(errA); err != nil {
			return false, err
		}
		if err := readErr(errB); err != nil {
			return false, err
		}
		if !bytes.Equal(bufA[:nA], bufB[:nB]) {
			return false, nil
		}
		// a short read means both streams ended at the same offset
		if nA < compareChunkSize {
			return true, nil
		}
	}
}

func readErr(err error) error {
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil
	}
	return err
}

func mustFs(fs afero.Fs) {
	if fs == nil {
		panic(ErrNilFilesystem)
	}
}
