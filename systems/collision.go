package systems

import (
	"github.com/incarnadined/pong/components"
	"github.com/incarnadined/pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects mirrors ball and paddle positions into their resolv objects.
func UpdateObjects(e *ecs.ECS) {
	components.Ball.Each(e.World, func(entry *donburi.Entry) {
		ball := components.Ball.Get(entry)
		obj := components.Object.Get(entry)
		obj.X = ball.Position.X - ball.Radius
		obj.Y = ball.Position.Y - ball.Radius
		obj.Update()
	})

	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Paddle.Get(entry)
		obj := components.Object.Get(entry)
		obj.X = p.Position.X
		obj.Y = p.Position.Y
		obj.Update()
	})
}

// BallPaddleOverlaps returns the paddle objects the ball currently overlaps.
// Nothing resolves these contacts: the ball passes through paddles and only
// the debug overlay reports them.
func BallPaddleOverlaps(e *ecs.ECS) []*resolv.Object {
	entry, ok := tags.Ball.First(e.World)
	if !ok {
		return nil
	}
	obj := components.Object.Get(entry)

	check := obj.Check(0, 0, tags.ResolvPaddle)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	for _, other := range check.Objects {
		if obj.Shape.Intersection(0, 0, other.Shape) != nil {
			hits = append(hits, other)
		}
	}
	return hits
}
