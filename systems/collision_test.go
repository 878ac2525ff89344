package systems

import (
	"testing"

	"github.com/incarnadined/pong/archetypes"
	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/incarnadined/pong/gamemath"
	"github.com/incarnadined/pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

func newCollisionWorld(c *cfg.Config) (*ecs.ECS, *components.BallData, *components.PaddleData) {
	e := newTestECS()
	space := resolv.NewSpace(c.Width, c.Height, 16, 16)
	spaceEntry := archetypes.Space.Spawn(e)
	components.Space.SetValue(spaceEntry, components.SpaceData{Space: space})

	r := c.Ball.Radius
	ballEntry := archetypes.Ball.Spawn(e)
	components.Ball.SetValue(ballEntry, components.BallData{
		Position: gamemath.Vec2{X: 600, Y: 400},
		Radius:   r,
	})
	ballObj := resolv.NewObject(600-r, 400-r, 2*r, 2*r, tags.ResolvBall)
	ballObj.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
	space.Add(ballObj)
	components.Object.SetValue(ballEntry, components.ObjectData{Object: ballObj})

	spawn := c.Paddle.Spawns[components.PaddlePointer]
	w, h := c.Paddle.Width, c.Paddle.Height
	paddleEntry := archetypes.Paddle.Spawn(e)
	components.Paddle.SetValue(paddleEntry, components.PaddleData{
		Position: spawn,
		Width:    w,
		Height:   h,
	})
	paddleObj := resolv.NewObject(spawn.X, spawn.Y, w, h, tags.ResolvPaddle)
	paddleObj.SetShape(resolv.NewRectangle(0, 0, w, h))
	space.Add(paddleObj)
	components.Object.SetValue(paddleEntry, components.ObjectData{Object: paddleObj})

	return e, components.Ball.Get(ballEntry), components.Paddle.Get(paddleEntry)
}

func TestUpdateObjectsMirrorsPositions(t *testing.T) {
	c := cfg.New()
	e, ball, paddle := newCollisionWorld(c)
	ball.Position = gamemath.Vec2{X: 100, Y: 200}
	paddle.Position.Y = 50

	UpdateObjects(e)

	ballEntry, _ := tags.Ball.First(e.World)
	if obj := components.Object.Get(ballEntry); obj.X != 88 || obj.Y != 188 {
		t.Errorf("ball object at (%v, %v), want (88, 188)", obj.X, obj.Y)
	}
	paddleEntry, _ := tags.Paddle.First(e.World)
	if obj := components.Object.Get(paddleEntry); obj.X != 1150 || obj.Y != 50 {
		t.Errorf("paddle object at (%v, %v), want (1150, 50)", obj.X, obj.Y)
	}
}

func TestBallPaddleOverlaps(t *testing.T) {
	c := cfg.New()
	e, ball, paddle := newCollisionWorld(c)

	UpdateObjects(e)
	if hits := BallPaddleOverlaps(e); len(hits) != 0 {
		t.Fatalf("overlaps = %d with the ball at the centre, want 0", len(hits))
	}

	ball.Position = gamemath.Vec2{X: paddle.Position.X + 5, Y: paddle.Position.Y + 40}
	UpdateObjects(e)
	if hits := BallPaddleOverlaps(e); len(hits) != 1 {
		t.Errorf("overlaps = %d with the ball inside the paddle, want 1", len(hits))
	}
}
