package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/incarnadined/pong/components"
	"github.com/incarnadined/pong/fonts"
	"github.com/incarnadined/pong/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InvertColour flips each colour channel around the midpoint using
// ((c - 128) * -1) + 127. Alpha is kept.
func InvertColour(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: invertChannel(c.R),
		G: invertChannel(c.G),
		B: invertChannel(c.B),
		A: c.A,
	}
}

func invertChannel(v uint8) uint8 {
	return uint8((int(v)-128)*-1 + 127)
}

// UpdateHover highlights the button while the pointer is over it.
func UpdateHover(b *components.ButtonData, pointer gamemath.Vec2) {
	if b.Bounds.Contains(pointer) {
		b.ActiveColour = InvertColour(b.BaseColour)
	} else {
		b.ActiveColour = b.BaseColour
	}
}

// IsClicked reports whether pointer is inside the button. Query it on a
// pointer press only; holding the button down must not re-trigger.
func IsClicked(b *components.ButtonData, pointer gamemath.Vec2) bool {
	return b.Bounds.Contains(pointer)
}

// UpdateButtons recomputes hover state for every button while in the menu.
func UpdateButtons(e *ecs.ECS) {
	if !GetOrCreateMode(e).IsMenu() {
		return
	}
	pointer := getOrCreateInput(e).Pointer

	components.Button.Each(e.World, func(entry *donburi.Entry) {
		UpdateHover(components.Button.Get(entry), pointer)
	})
}

// DrawButtons renders menu buttons: inverted body, 1px border, then the label.
func DrawButtons(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateMode(e).IsMenu() {
		return
	}
	face := fonts.Button.Get()
	ascent := fonts.Ascent(face)

	components.Button.Each(e.World, func(entry *donburi.Entry) {
		b := components.Button.Get(entry)
		r := b.Bounds

		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), InvertColour(b.ActiveColour), false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, b.ActiveColour, false)

		text.Draw(screen, b.Label, face, int(b.Position.X), int(b.Position.Y)+ascent, b.ActiveColour)
	})
}
