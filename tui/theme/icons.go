package theme

import (
	"github.com/mattsolo1/servr/pkg/inspect"
)

// Nerd Font Icons (Private Constants)
const (
	nerdIconDir     = "" // cod-folder (U+EA83)
	nerdIconMarkup  = "" // dev-html5 (U+E736)
	nerdIconStyle   = "" // dev-css3 (U+E749)
	nerdIconScript  = "" // dev-javascript (U+E781)
	nerdIconData    = "" // seti-json (U+E60B)
	nerdIconImage   = "󰋩" // md-image (U+F02E9)
	nerdIconVector  = "󰕙" // md-vector_curve (U+F0559)
	nerdIconDoc     = "󰈙" // md-file_document (U+F0219)
	nerdIconCode    = "" // oct-code (U+F44F)
	nerdIconArchive = "" // oct-file_zip (U+F491)
	nerdIconOther   = "" // oct-file (U+F4A5)
)

// Plain fallback markers, carried over from the flat web-style glyph set.
const (
	plainIconDir     = "▸"
	plainIconMarkup  = "◯"
	plainIconStyle   = "◆"
	plainIconScript  = "◈"
	plainIconData    = "▣"
	plainIconImage   = "▦"
	plainIconVector  = "◇"
	plainIconDoc     = "▤"
	plainIconCode    = "◐"
	plainIconArchive = "▦"
	plainIconOther   = "▢"
)

// DirIcon returns the marker used for directories.
func DirIcon() string {
	if useNerdFont() {
		return nerdIconDir
	}
	return plainIconDir
}

// FileIcon returns the decorative marker for a file category.
func FileIcon(cat inspect.Category) string {
	nerd := useNerdFont()
	switch cat {
	case inspect.CategoryMarkup:
		return pick(nerd, nerdIconMarkup, plainIconMarkup)
	case inspect.CategoryStyle:
		return pick(nerd, nerdIconStyle, plainIconStyle)
	case inspect.CategoryScript:
		return pick(nerd, nerdIconScript, plainIconScript)
	case inspect.CategoryData:
		return pick(nerd, nerdIconData, plainIconData)
	case inspect.CategoryImage:
		return pick(nerd, nerdIconImage, plainIconImage)
	case inspect.CategoryVector:
		return pick(nerd, nerdIconVector, plainIconVector)
	case inspect.CategoryDoc:
		return pick(nerd, nerdIconDoc, plainIconDoc)
	case inspect.CategoryCode:
		return pick(nerd, nerdIconCode, plainIconCode)
	case inspect.CategoryArchive:
		return pick(nerd, nerdIconArchive, plainIconArchive)
	default:
		return pick(nerd, nerdIconOther, plainIconOther)
	}
}

// EntryIcon returns the marker for a listed entry.
func EntryIcon(e inspect.Entry) string {
	if e.IsDir {
		return DirIcon()
	}
	return FileIcon(e.Category)
}

func pick(nerd bool, nerdIcon, plainIcon string) string {
	if nerd {
		return nerdIcon
	}
	return plainIcon
}
