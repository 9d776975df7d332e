package ctxutil

import "context"

// Request identifies one inbound HTTP call. It rides on the request context
// so services can tag their logs without depending on gin.
type Request struct {
	ID      string
	TraceID string
	Route   string
}

type requestKey struct{}

func WithRequest(ctx context.Context, r Request) context.Context {
	return context.WithValue(ctx, requestKey{}, r)
}

func RequestFrom(ctx context.Context) (Request, bool) {
	if ctx == nil {
		return Request{}, false
	}
	r, ok := ctx.Value(requestKey{}).(Request)
	return r, ok
}

// RequestID returns the id attached by the request middleware, or "".
func RequestID(ctx context.Context) string {
	r, _ := RequestFrom(ctx)
	return r.ID
}
