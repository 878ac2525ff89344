package factory

import (
	"github.com/incarnadined/pong/archetypes"
	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/incarnadined/pong/gamemath"
	"github.com/incarnadined/pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePaddle spawns the paddle with the given index at its configured spawn.
func CreatePaddle(ecs *ecs.ECS, c *cfg.Config, index int) *donburi.Entry {
	paddle := archetypes.Paddle.Spawn(ecs)

	spawn := c.Paddle.Spawns[index]
	w, h := c.Paddle.Width, c.Paddle.Height
	components.Paddle.SetValue(paddle, components.PaddleData{
		Index:           index,
		Position:        spawn,
		InitialPosition: spawn,
		Width:           w,
		Height:          h,
		Bounds:          gamemath.NewRect(spawn, w, h),
		Colour:          c.Paddle.Colour,
	})

	obj := resolv.NewObject(spawn.X, spawn.Y, w, h, tags.ResolvPaddle)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = paddle
	components.Object.SetValue(paddle, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return paddle
}
