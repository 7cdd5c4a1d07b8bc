package middleware

import "net/http"

// Middleware wraps an http.Handler with extra behavior.
type Middleware func(http.Handler) http.Handler

// Chain folds several middleware into one. Application order follows the
// argument order: Chain(mw1, mw2)(h) is mw1(mw2(h)), so the first argument
// runs outermost on every request.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
