package movement

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/config"
)

var ctxPool = sync.Pool{
	New: func() any {
		return &movementContext{}
	},
}

func newCtx(s *State, cfg *config.Config, dt float32) *movementContext {
	ctx := ctxPool.Get().(*movementContext)
	ctx.state = s
	ctx.cfg = cfg
	ctx.dt = dt
	ctx.prepare()
	return ctx
}

func putCtx(ctx *movementContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *movementContext) reset() {
	ctx.state = nil
	ctx.cfg = nil
	ctx.dt = 0
	ctx.moveDir = mgl32.Vec3{}
	ctx.speed = 0
}
