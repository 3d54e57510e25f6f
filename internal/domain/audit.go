package domain

import "context"

type actorKey struct{}

// WithActor сохраняет в контексте имя того, кто выполняет запрос
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext возвращает автора запроса или пустую строку
func ActorFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}
