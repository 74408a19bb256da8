// Package inspect provides filesystem helpers for validating, listing, and
// probing a folder before it is served.
package inspect

import (
	"net"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/mattsolo1/servr/errors"
)

// Category classifies a file by extension. It only drives the decorative
// marker shown next to a file name, never behavior.
type Category string

const (
	CategoryMarkup  Category = "markup"
	CategoryStyle   Category = "style"
	CategoryScript  Category = "script"
	CategoryData    Category = "data"
	CategoryImage   Category = "image"
	CategoryVector  Category = "vector"
	CategoryDoc     Category = "doc"
	CategoryCode    Category = "code"
	CategoryArchive Category = "archive"
	CategoryOther   Category = "other"
)

// extensionCategories is the fixed extension→category table.
var extensionCategories = map[string]Category{
	".html": CategoryMarkup,
	".htm":  CategoryMarkup,
	".css":  CategoryStyle,
	".scss": CategoryStyle,
	".sass": CategoryStyle,
	".less": CategoryStyle,
	".js":   CategoryScript,
	".ts":   CategoryScript,
	".tsx":  CategoryScript,
	".json": CategoryData,
	".xml":  CategoryData,
	".png":  CategoryImage,
	".jpg":  CategoryImage,
	".jpeg": CategoryImage,
	".gif":  CategoryImage,
	".ico":  CategoryImage,
	".svg":  CategoryVector,
	".vue":  CategoryVector,
	".md":   CategoryDoc,
	".txt":  CategoryDoc,
	".py":   CategoryCode,
	".php":  CategoryCode,
	".zip":  CategoryArchive,
	".tar":  CategoryArchive,
	".gz":   CategoryArchive,
}

// indexCandidates are the conventional index filenames, in priority order.
var indexCandidates = []string{"index.html", "index.htm", "default.html", "home.html"}

// Entry is one item in a folder listing.
type Entry struct {
	Name     string   `json:"name"`
	IsDir    bool     `json:"is_dir"`
	Category Category `json:"category,omitempty"`
}

// CategoryForExtension returns the category for a file extension (with
// leading dot, case-insensitive).
func CategoryForExtension(ext string) Category {
	if cat, ok := extensionCategories[strings.ToLower(ext)]; ok {
		return cat
	}
	return CategoryOther
}

// Validate checks that path exists and is a directory. The two failure
// modes carry distinct error codes so callers can tell them apart.
func Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.DirectoryNotFound(path)
		}
		return errors.Filesystem("stat "+path, err)
	}
	if !info.IsDir() {
		return errors.NotADirectory(path)
	}
	return nil
}

// ListContents returns the entries of a folder sorted lexicographically by
// name, with directories flagged and files tagged by category. The listing
// is a snapshot; callers can re-list at any time.
func ListContents(path string) ([]Entry, error) {
	if err := Validate(path); err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Filesystem("read dir "+path, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		e := Entry{Name: de.Name(), IsDir: de.IsDir()}
		if !e.IsDir {
			e.Category = CategoryForExtension(filepath.Ext(de.Name()))
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// FindIndexFile returns the filename to auto-open once a server starts.
// Conventional index names are checked in priority order; failing that, the
// lexicographically first HTML-like file wins. ok is false when the folder
// has no candidate at all.
func FindIndexFile(directory string) (filename string, ok bool) {
	for _, candidate := range indexCandidates {
		if _, err := os.Stat(filepath.Join(directory, candidate)); err == nil {
			return candidate, true
		}
	}

	dirEntries, err := os.ReadDir(directory)
	if err != nil {
		return "", false
	}

	var htmlFiles []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := strings.ToLower(de.Name())
		if strings.HasSuffix(name, ".html") || strings.HasSuffix(name, ".htm") {
			htmlFiles = append(htmlFiles, de.Name())
		}
	}
	if len(htmlFiles) == 0 {
		return "", false
	}

	sort.Strings(htmlFiles)
	return htmlFiles[0], true
}

// IsPortAvailable attempts a transient bind to the loopback interface on
// port; success means available. Inherently racy against the later actual
// bind by the spawned server, which is acceptable: losing the race costs a
// user-visible startup failure, nothing more.
func IsPortAvailable(port int) bool {
	listener, err := net.Listen("tcp", net.JoinHostPort("localhost", strconv.Itoa(port)))
	if err != nil {
		return false
	}
	_ = listener.Close()
	return true
}
