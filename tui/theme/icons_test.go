package theme

import (
	"testing"

	"github.com/mattsolo1/servr/pkg/inspect"
)

func TestIconsNeverEmpty(t *testing.T) {
	t.Setenv("SERVR_ASCII", "1")

	if DirIcon() == "" {
		t.Error("DirIcon returned empty marker")
	}
	for _, cat := range []inspect.Category{
		inspect.CategoryMarkup, inspect.CategoryStyle, inspect.CategoryScript,
		inspect.CategoryData, inspect.CategoryImage, inspect.CategoryVector,
		inspect.CategoryDoc, inspect.CategoryCode, inspect.CategoryArchive,
		inspect.CategoryOther,
	} {
		if FileIcon(cat) == "" {
			t.Errorf("FileIcon(%q) returned empty marker", cat)
		}
	}
}

func TestEntryIcon(t *testing.T) {
	t.Setenv("SERVR_ASCII", "1")

	dir := inspect.Entry{Name: "assets", IsDir: true}
	if EntryIcon(dir) != plainIconDir {
		t.Errorf("EntryIcon(dir) = %q", EntryIcon(dir))
	}

	file := inspect.Entry{Name: "index.html", Category: inspect.CategoryMarkup}
	if EntryIcon(file) != plainIconMarkup {
		t.Errorf("EntryIcon(markup) = %q", EntryIcon(file))
	}
}
