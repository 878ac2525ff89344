package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

type FontName string

const (
	Title  FontName = "title"
	Button FontName = "button"
	Score  FontName = "score"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// Sizes maps each font to its point size.
type Sizes map[FontName]float64

// LoadDefaults parses the embedded Go Bold face once per size. Faces that
// are already loaded are kept.
func LoadDefaults(sizes Sizes) error {
	for name, size := range sizes {
		if _, ok := fonts[name]; ok {
			continue
		}
		if err := LoadFontWithSize(name, gobold.TTF, size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Measure returns the rendered width and line height of s in face.
func Measure(face font.Face, s string) (width, height float64) {
	width = float64(font.MeasureString(face, s).Ceil())
	height = float64(face.Metrics().Height.Ceil())
	return width, height
}

// Ascent returns the distance from the top of a line to its baseline.
func Ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
