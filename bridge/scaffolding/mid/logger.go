package mid

import (
	"context"
	"net/http"
	"time"

	"github.com/jrazmi/pollschema/infrastructure/web"
	"github.com/jrazmi/pollschema/sdk/logger"
)

// Logger writes a line when a request starts and one when it completes.
func Logger(log *logger.Logger) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			now := time.Now()

			path := r.URL.Path
			if r.URL.RawQuery != "" {
				path += "?" + r.URL.RawQuery
			}

			log.InfoContext(ctx, "request started", "method", r.Method, "path", path, "remoteaddr", r.RemoteAddr)

			resp := next(ctx, r)

			status := http.StatusOK
			switch v := resp.(type) {
			case nil:
				status = http.StatusNoContent
			case interface{ HTTPStatus() int }:
				status = v.HTTPStatus()
			case error:
				status = http.StatusInternalServerError
			}

			log.InfoContext(ctx, "request completed", "method", r.Method, "path", path, "remoteaddr", r.RemoteAddr,
				"statuscode", status, "since", time.Since(now).String())

			return resp
		}
	}
}
