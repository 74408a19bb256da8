package inspect

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/mattsolo1/servr/errors"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		if err := Validate(t.TempDir()); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		err := Validate(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, errors.ErrCodeDirectoryNotFound) {
			t.Errorf("expected DIRECTORY_NOT_FOUND, got %v", err)
		}
	})

	t.Run("regular file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "file.txt")

		err := Validate(filepath.Join(dir, "file.txt"))
		if !errors.Is(err, errors.ErrCodeNotADirectory) {
			t.Errorf("expected NOT_A_DIRECTORY, got %v", err)
		}
	})
}

func TestListContents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "zebra.css")
	writeFile(t, dir, "app.js")
	writeFile(t, dir, "readme.md")
	if err := os.Mkdir(filepath.Join(dir, "assets"), 0755); err != nil {
		t.Fatal(err)
	}

	entries, err := ListContents(dir)
	if err != nil {
		t.Fatalf("ListContents() error = %v", err)
	}

	wantNames := []string{"app.js", "assets", "readme.md", "zebra.css"}
	if len(entries) != len(wantNames) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantNames))
	}
	for i, name := range wantNames {
		if entries[i].Name != name {
			t.Errorf("entries[%d].Name = %q, want %q", i, entries[i].Name, name)
		}
	}

	if !entries[1].IsDir {
		t.Error("assets should be flagged as a directory")
	}
	if entries[0].Category != CategoryScript {
		t.Errorf("app.js category = %q", entries[0].Category)
	}
	if entries[3].Category != CategoryStyle {
		t.Errorf("zebra.css category = %q", entries[3].Category)
	}

	// Listing is restartable: a second call returns the same snapshot.
	again, err := ListContents(dir)
	if err != nil {
		t.Fatalf("second ListContents() error = %v", err)
	}
	if len(again) != len(entries) {
		t.Errorf("second listing has %d entries, want %d", len(again), len(entries))
	}
}

func TestListContentsInvalidPath(t *testing.T) {
	_, err := ListContents(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, errors.ErrCodeDirectoryNotFound) {
		t.Errorf("expected DIRECTORY_NOT_FOUND, got %v", err)
	}
}

func TestFindIndexFile(t *testing.T) {
	t.Run("conventional names win in priority order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "home.html")
		writeFile(t, dir, "index.htm")
		writeFile(t, dir, "about.html")

		got, ok := FindIndexFile(dir)
		if !ok || got != "index.htm" {
			t.Errorf("FindIndexFile() = %q, %v; want index.htm", got, ok)
		}
	})

	t.Run("falls back to first html-like file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "zzz.htm")
		writeFile(t, dir, "about.html")

		got, ok := FindIndexFile(dir)
		if !ok || got != "about.html" {
			t.Errorf("FindIndexFile() = %q, %v; want about.html", got, ok)
		}
	})

	t.Run("no candidate", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "styles.css")

		if got, ok := FindIndexFile(dir); ok {
			t.Errorf("FindIndexFile() = %q, want none", got)
		}
	})
}

func TestCategoryForExtension(t *testing.T) {
	tests := []struct {
		ext      string
		expected Category
	}{
		{".html", CategoryMarkup},
		{".HTM", CategoryMarkup},
		{".css", CategoryStyle},
		{".tsx", CategoryScript},
		{".json", CategoryData},
		{".png", CategoryImage},
		{".svg", CategoryVector},
		{".md", CategoryDoc},
		{".py", CategoryCode},
		{".gz", CategoryArchive},
		{".exe", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := CategoryForExtension(tt.ext); got != tt.expected {
				t.Errorf("CategoryForExtension(%q) = %q, want %q", tt.ext, got, tt.expected)
			}
		})
	}
}

func TestIsPortAvailable(t *testing.T) {
	// Grab an ephemeral port, confirm it reads as taken while held and
	// available again after release.
	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port

	if IsPortAvailable(port) {
		t.Errorf("port %d should read as unavailable while held", port)
	}

	listener.Close()

	if !IsPortAvailable(port) {
		t.Errorf("port %d should read as available after release", port)
	}
}
