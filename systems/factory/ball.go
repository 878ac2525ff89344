package factory

import (
	"math/rand"

	"github.com/incarnadined/pong/archetypes"
	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/incarnadined/pong/gamemath"
	"github.com/incarnadined/pong/systems"
	"github.com/incarnadined/pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBall spawns the ball at the arena centre, served left or right.
func CreateBall(ecs *ecs.ECS, c *cfg.Config, rng *rand.Rand) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	center := gamemath.Vec2{X: float64(c.Width) / 2, Y: float64(c.Height) / 2}
	r := c.Ball.Radius
	components.Ball.SetValue(ball, components.BallData{
		Position:        center,
		InitialPosition: center,
		Velocity:        systems.ServeVelocity(c.BallSpeed, rng),
		Radius:          r,
		Colour:          c.Ball.Colour,
	})

	obj := resolv.NewObject(center.X-r, center.Y-r, 2*r, 2*r, tags.ResolvBall)
	obj.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
	obj.Data = ball
	components.Object.SetValue(ball, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return ball
}
