package archetypes

import (
	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/incarnadined/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
	)
	Paddle = newArchetype(
		tags.Paddle,
		components.Paddle,
		components.Object,
	)
	Button = newArchetype(
		tags.Button,
		components.Button,
	)
	Title = newArchetype(
		tags.Title,
		components.Title,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
