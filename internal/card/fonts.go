package card

import (
	"log/slog"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Font files expected in the assets directory. A missing or unreadable file
// degrades to the builtin face so rendering keeps working in minimal
// deployments, at the cost of CJK glyph coverage.
const (
	fontFileCJK  = "hei.ttf"
	fontFileDate = "fzhei.ttf"
	fontFileID   = "ocrb10bt.ttf"
)

// fontSet holds the faces the layout uses: a large CJK face for the name, a
// regular one for labels and values, a date face, and the OCR-style face
// the national id line is printed in.
type fontSet struct {
	name   font.Face
	normal font.Face
	date   font.Face
	id     font.Face
}

func loadFonts(dir string, logger *slog.Logger) *fontSet {
	load := func(file string, points float64) font.Face {
		if dir == "" {
			return basicfont.Face7x13
		}
		face, err := gg.LoadFontFace(filepath.Join(dir, file), points)
		if err != nil {
			if logger != nil {
				logger.Warn("font not available, using builtin face",
					"font", file,
					"error", err,
				)
			}
			return basicfont.Face7x13
		}
		return face
	}
	return &fontSet{
		name:   load(fontFileCJK, 72),
		normal: load(fontFileCJK, 60),
		date:   load(fontFileDate, 60),
		id:     load(fontFileID, 72),
	}
}

// ascentOf converts a face's ascent to pixels. The layout anchors text by
// its top-left corner while gg draws from the baseline.
func ascentOf(face font.Face) float64 {
	return float64(face.Metrics().Ascent.Ceil())
}
