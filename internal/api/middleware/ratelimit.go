package middleware

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"golang.org/x/time/rate"
)

// RateLimit returns a container filter that rejects requests with 429 once
// the token bucket is exhausted. rps <= 0 disables limiting.
func RateLimit(rps float64, burst int) restful.FilterFunction {
	if rps <= 0 {
		return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
			chain.ProcessFilter(req, resp)
		}
	}

	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		if !limiter.Allow() {
			HandleError(resp, errors.New("too many requests"), http.StatusTooManyRequests)
			return
		}
		chain.ProcessFilter(req, resp)
	}
}
