package actorutil

import (
	"strings"
	"testing"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishDone struct{}

// publisher handles "publish:*" one at a time, stashing everything while a publish is in flight
type publisher struct {
	behavior actor.Behavior
	stash    *Stash
	handled  chan<- string
}

func (p *publisher) Receive(ctx actor.Context) {
	p.behavior.Receive(ctx)
}

func (p *publisher) idle(ctx actor.Context) {
	if msg, ok := ctx.Message().(string); ok {
		p.handled <- msg
		if strings.HasPrefix(msg, "publish:") {
			p.behavior.BecomeStacked(p.publishing)
		}
	}
}

func (p *publisher) publishing(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case publishDone:
		p.behavior.UnbecomeStacked()
		p.stash.UnstashAll(ctx)
		p.handled <- "unstashed"
	default:
		p.stash.Stash(ctx, msg)
	}
}

func TestStashDrainsEverythingAfterPublish(t *testing.T) {
	as := actor.NewActorSystem()
	defer as.Shutdown()

	handled := make(chan string, 10)
	stash := &Stash{}
	pid := as.Root.Spawn(actor.PropsFromProducer(func() actor.Actor {
		p := &publisher{behavior: actor.NewBehavior(), stash: stash, handled: handled}
		p.behavior.Become(p.idle)
		return p
	}))

	for _, msg := range []string{"publish:a", "command", "health", "publish:b"} {
		as.Root.Send(pid, msg)
	}
	as.Root.Send(pid, publishDone{})

	var got []string
	timeout := time.After(2 * time.Second)
	for len(got) < 5 {
		select {
		case msg := <-handled:
			got = append(got, msg)
		case <-timeout:
			require.FailNow(t, "stashed messages not delivered", "got %v", got)
		}
	}
	// a non publish message at the head of the stash does not hold back the others
	assert.Equal(t, []string{"publish:a", "unstashed", "command", "health", "publish:b"}, got)
}
