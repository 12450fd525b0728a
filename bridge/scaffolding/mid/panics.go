package mid

import (
	"context"
	"net/http"
	"runtime/debug"

	"github.com/jrazmi/pollschema/bridge/scaffolding/errs"
	"github.com/jrazmi/pollschema/bridge/scaffolding/metrics"
	"github.com/jrazmi/pollschema/infrastructure/web"
)

// Panics recovers from panics and turns them into an InternalOnlyLog error
// so the stack reaches the logs but not the client. It must run inside
// Errors to be reported.
func Panics() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) (resp web.Encoder) {
			defer func() {
				if rec := recover(); rec != nil {
					trace := debug.Stack()
					resp = errs.Newf(errs.InternalOnlyLog, "PANIC [%v] TRACE[%s]", rec, string(trace))

					metrics.AddPanics(ctx)
				}
			}()

			return next(ctx, r)
		}
	}
}

