package actorutil

import (
	"testing"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/stretchr/testify/assert"
)

type namedState string

func (s namedState) Name() string {
	return string(s)
}

func (s namedState) Receive(actor.Context) {}

func TestActorWithStatesTracksActiveState(t *testing.T) {
	s := ActorWithStates{Behavior: actor.NewBehavior()}
	assert.Empty(t, s.StateName())

	s.Become(namedState("starting"))
	assert.Equal(t, "starting", s.StateName())

	s.Become(namedState("idle"))
	s.BecomeStacked(namedState("busy"))
	assert.Equal(t, "busy", s.StateName())

	s.UnbecomeStacked()
	assert.Equal(t, "idle", s.StateName())
}
