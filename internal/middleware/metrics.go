package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
)

type httpObserver interface {
	ObserveHTTP(route, method string, status int, elapsed time.Duration)
}

func Metrics(m httpObserver) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
