package systems

import (
	"math"
	"testing"

	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/incarnadined/pong/gamemath"
)

func TestMoveBall(t *testing.T) {
	c := cfg.New()
	e := newTestECS()
	ball := spawnBall(e, c, gamemath.Vec2{X: 600, Y: 400}, gamemath.Vec2{X: 500, Y: 0})

	MoveBall(ball, 1.0/60)

	if math.Abs(ball.Position.X-(600+500.0/60)) > 1e-9 {
		t.Errorf("x = %v, want %v", ball.Position.X, 600+500.0/60)
	}
	if ball.Position.Y != 400 {
		t.Errorf("y = %v, want 400", ball.Position.Y)
	}
}

func TestBounceBall(t *testing.T) {
	c := cfg.New()
	height := float64(c.Height)

	tests := []struct {
		name    string
		y       float64
		want    bool
		wantVY  float64
		startVY float64
	}{
		{"above top bound", 5, true, -30, 30},
		{"below bottom bound", height - 5, true, 30, -30},
		{"on top bound", c.Ball.Radius, false, 30, 30},
		{"on bottom bound", height - c.Ball.Radius, false, 30, 30},
		{"middle", 400, false, 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			ball := spawnBall(e, c, gamemath.Vec2{X: 600, Y: tt.y}, gamemath.Vec2{X: 500, Y: tt.startVY})

			got := BounceBall(ball, height)
			if got != tt.want {
				t.Errorf("BounceBall() = %v, want %v", got, tt.want)
			}
			if ball.Velocity.Y != tt.wantVY {
				t.Errorf("vy = %v, want %v", ball.Velocity.Y, tt.wantVY)
			}
			if ball.Velocity.X != 500 {
				t.Errorf("vx changed to %v", ball.Velocity.X)
			}
		})
	}
}

func TestCheckScore(t *testing.T) {
	c := cfg.New()

	tests := []struct {
		name       string
		x, y       float64
		start      components.ScoreData
		want       components.ScoreData
		wantScored bool
	}{
		{"left exit from fresh game", -5, 300, components.ScoreData{}, components.ScoreData{Right: 1}, true},
		{"left exit scores right", -1, 100, components.ScoreData{Left: 2, Right: 3}, components.ScoreData{Left: 2, Right: 4}, true},
		{"right exit scores left", 1201, 100, components.ScoreData{}, components.ScoreData{Left: 1}, true},
		{"on left edge", 0, 100, components.ScoreData{}, components.ScoreData{}, false},
		{"on right edge", 1200, 100, components.ScoreData{}, components.ScoreData{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			ball := spawnBall(e, c, gamemath.Vec2{X: tt.x, Y: tt.y}, gamemath.Vec2{X: 500, Y: 0})

			got, scored := CheckScore(ball, tt.start, c.Width, c.Height, c.BallSpeed, newTestRand())
			if got != tt.want || scored != tt.wantScored {
				t.Fatalf("CheckScore() = %+v, %v, want %+v, %v", got, scored, tt.want, tt.wantScored)
			}

			if !scored {
				if ball.Position.X != tt.x {
					t.Errorf("ball moved without a score: x = %v", ball.Position.X)
				}
				return
			}
			if ball.Position.X != ball.InitialPosition.X {
				t.Errorf("respawn x = %v, want %v", ball.Position.X, ball.InitialPosition.X)
			}
			if ball.Position.Y < 0 || ball.Position.Y > float64(c.Height) {
				t.Errorf("respawn y = %v, outside [0, %d]", ball.Position.Y, c.Height)
			}
			if math.Abs(ball.Velocity.Length()-c.BallSpeed) > 1e-9 {
				t.Errorf("respawn speed = %v, want %v", ball.Velocity.Length(), c.BallSpeed)
			}
			if math.Abs(ball.Velocity.Y) > 1e-9 || math.Abs(math.Abs(ball.Velocity.X)-c.BallSpeed) > 1e-9 {
				t.Errorf("respawn velocity = %+v, want 0 or 180 degrees", ball.Velocity)
			}
		})
	}
}

func TestServeVelocityIsHorizontal(t *testing.T) {
	rng := newTestRand()
	seenLeft, seenRight := false, false

	for i := 0; i < 200; i++ {
		v := ServeVelocity(500, rng)
		if math.Abs(v.Y) > 1e-9 {
			t.Fatalf("serve has vertical component %v", v.Y)
		}
		switch {
		case math.Abs(v.X-500) < 1e-9:
			seenRight = true
		case math.Abs(v.X+500) < 1e-9:
			seenLeft = true
		default:
			t.Fatalf("serve speed %v, want +-500", v.X)
		}
	}

	if !seenLeft || !seenRight {
		t.Errorf("serves never went both ways: left=%v right=%v", seenLeft, seenRight)
	}
}

func TestRespawnBallCoversArenaHeight(t *testing.T) {
	c := cfg.New()
	e := newTestECS()
	ball := spawnBall(e, c, gamemath.Vec2{}, gamemath.Vec2{})
	rng := newTestRand()

	for i := 0; i < 500; i++ {
		RespawnBall(ball, 4, c.BallSpeed, rng)
		y := ball.Position.Y
		if y != math.Trunc(y) || y < 0 || y > 4 {
			t.Fatalf("respawn y = %v, want an integer in [0, 4]", y)
		}
		if ball.Velocity.Length() < c.BallSpeed-1e-9 || ball.Velocity.Length() > c.BallSpeed+1e-9 {
			t.Fatalf("respawn speed = %v, want %v", ball.Velocity.Length(), c.BallSpeed)
		}
	}
}

func TestUpdateBallOnlyRunsWhilePlaying(t *testing.T) {
	c := cfg.New()
	e := newTestECS()
	ball := spawnBall(e, c, gamemath.Vec2{X: 600, Y: 400}, gamemath.Vec2{X: 500, Y: 0})
	update := NewUpdateBall(c, newTestRand())

	update(e)
	if ball.Position.X != 600 {
		t.Fatalf("ball moved in the menu: x = %v", ball.Position.X)
	}

	*GetOrCreateMode(e) = components.PlayingMode(1)
	update(e)
	if ball.Position.X <= 600 {
		t.Errorf("ball did not move while playing: x = %v", ball.Position.X)
	}
}

func TestUpdateBallScoresAndQueuesSound(t *testing.T) {
	c := cfg.New()
	e := newTestECS()
	spawnBall(e, c, gamemath.Vec2{X: 1199, Y: 400}, gamemath.Vec2{X: 500, Y: 0})
	*GetOrCreateMode(e) = components.PlayingMode(1)

	NewUpdateBall(c, newTestRand())(e)

	if got := *GetOrCreateScore(e); got != (components.ScoreData{Left: 1}) {
		t.Errorf("score = %+v, want {Left:1 Right:0}", got)
	}
	pending := GetOrCreateAudio(e).PendingSFX
	if len(pending) != 1 || pending[0] != cfg.SoundScore {
		t.Errorf("pending sounds = %v, want [SoundScore]", pending)
	}
}

func TestUpdateBallSilentOnHorizontalBounce(t *testing.T) {
	c := cfg.New()
	e := newTestECS()
	spawnBall(e, c, gamemath.Vec2{X: 600, Y: 2}, gamemath.Vec2{X: 500, Y: 0})
	*GetOrCreateMode(e) = components.PlayingMode(1)

	NewUpdateBall(c, newTestRand())(e)

	if pending := GetOrCreateAudio(e).PendingSFX; len(pending) != 0 {
		t.Errorf("pending sounds = %v, want none", pending)
	}
}

func TestBallCrossesArenaInOneSecond(t *testing.T) {
	c := cfg.New()
	e := newTestECS()
	ball := spawnBall(e, c, gamemath.Vec2{X: 600, Y: 400}, gamemath.Vec2{X: 500, Y: 0})

	MoveBall(ball, 1)
	if ball.Position != (gamemath.Vec2{X: 1100, Y: 400}) {
		t.Fatalf("position = %+v, want (1100, 400)", ball.Position)
	}
	if BounceBall(ball, float64(c.Height)) {
		t.Error("unexpected bounce")
	}
	if got, scored := CheckScore(ball, components.ScoreData{}, c.Width, c.Height, c.BallSpeed, newTestRand()); scored || got != (components.ScoreData{}) {
		t.Errorf("CheckScore() = %+v, %v, want no score", got, scored)
	}
}
