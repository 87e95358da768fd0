package httpx

import (
	"context"

	"github.com/Ivannn15/agencyroom/internal/domain"
)

type ctxKey string

const ctxKeyActor ctxKey = "actor"

// ContextWithActor stores the authenticated caller for downstream handlers.
func ContextWithActor(ctx context.Context, a domain.Actor) context.Context {
	return context.WithValue(ctx, ctxKeyActor, a)
}

// ActorFromContext returns the authenticated caller, if any.
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	a, ok := ctx.Value(ctxKeyActor).(domain.Actor)
	return a, ok
}
