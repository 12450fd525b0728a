package web

import "slices"

// Use appends global middleware. It applies to routes registered afterwards.
func (wh *WebHandler) Use(middleware ...Middleware) {
	wh.globalMiddleware = append(wh.globalMiddleware, middleware...)
}

// ============================================================================
// Helper Methods
// ============================================================================

// buildHandlerChain wraps handler so that global middleware runs first, then
// route middleware in the order given.
func (wh *WebHandler) buildHandlerChain(handler HandlerFunc, middleware ...Middleware) HandlerFunc {
	allMiddleware := slices.Concat(wh.globalMiddleware, middleware)

	final := handler
	for i := len(allMiddleware) - 1; i >= 0; i-- {
		final = allMiddleware[i](final)
	}

	return final
}
