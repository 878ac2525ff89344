package systems

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/incarnadined/pong/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// serveAngles are the only directions a ball is served in, in degrees.
var serveAngles = [...]float64{0, 180}

// Serves are horizontal, so a ball respawned inside the top or bottom margin
// flips a near-zero vertical speed every frame. Those flips stay silent.
const audibleBounceSpeed = 1.0

// MoveBall advances the ball by its velocity over dt seconds.
func MoveBall(ball *components.BallData, dt float64) {
	ball.Position.Accumulate(ball.Velocity.Scale(dt))
}

// BounceBall reflects the vertical velocity when the ball is past the top or
// bottom bound. It reports whether a reflection happened.
func BounceBall(ball *components.BallData, arenaHeight float64) bool {
	if ball.Position.Y < ball.Radius || ball.Position.Y > arenaHeight-ball.Radius {
		ball.Velocity = gamemath.Vec2{X: ball.Velocity.X, Y: -ball.Velocity.Y}
		return true
	}
	return false
}

// CheckScore awards a point when the ball has left through a horizontal bound
// and respawns it. Leaving on the left scores for the right player and vice
// versa. The score is returned unchanged, with scored false, otherwise.
func CheckScore(ball *components.BallData, score components.ScoreData, arenaWidth, arenaHeight int, speed float64, rng *rand.Rand) (components.ScoreData, bool) {
	switch {
	case ball.Position.X < 0:
		score.Right++
	case ball.Position.X > float64(arenaWidth):
		score.Left++
	default:
		return score, false
	}

	RespawnBall(ball, arenaHeight, speed, rng)
	return score, true
}

// RespawnBall moves the ball back to its initial x with a random y in
// [0, arenaHeight] and serves it left or right at speed.
func RespawnBall(ball *components.BallData, arenaHeight int, speed float64, rng *rand.Rand) {
	ball.Position = ball.InitialPosition
	ball.Position.Y = float64(rng.Intn(arenaHeight + 1))
	ball.Velocity = ServeVelocity(speed, rng)
}

// ServeVelocity returns a horizontal velocity of the given speed in a random
// direction.
func ServeVelocity(speed float64, rng *rand.Rand) gamemath.Vec2 {
	return gamemath.Polar(speed, serveAngles[rng.Intn(len(serveAngles))])
}

// NewUpdateBall creates the system that moves, bounces and scores the ball
// while a game is being played.
func NewUpdateBall(c *cfg.Config, rng *rand.Rand) ecs.System {
	dt := 1.0 / float64(c.FrameRate)

	return func(e *ecs.ECS) {
		if !GetOrCreateMode(e).IsPlaying() {
			return
		}

		entry, ok := components.Ball.First(e.World)
		if !ok {
			return
		}
		ball := components.Ball.Get(entry)

		MoveBall(ball, dt)
		if BounceBall(ball, float64(c.Height)) && math.Abs(ball.Velocity.Y) >= audibleBounceSpeed {
			PlaySFX(e, cfg.SoundBounce)
		}

		score := GetOrCreateScore(e)
		updated, scored := CheckScore(ball, *score, c.Width, c.Height, c.BallSpeed, rng)
		if scored {
			*score = updated
			PlaySFX(e, cfg.SoundScore)
		}
	}
}

// DrawBall renders the ball while playing.
func DrawBall(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateMode(e).IsPlaying() {
		return
	}

	components.Ball.Each(e.World, func(entry *donburi.Entry) {
		ball := components.Ball.Get(entry)
		vector.FillCircle(
			screen,
			float32(ball.Position.X), float32(ball.Position.Y),
			float32(ball.Radius),
			ball.Colour,
			true,
		)
	})
}
