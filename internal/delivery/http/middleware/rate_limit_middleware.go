package middleware

import (
	"context"
	"net"
	"net/http"

	"patient-chatbot/internal/chat"
	"patient-chatbot/pkg/response"

	"github.com/gorilla/handlers"
	"github.com/sirupsen/logrus"
)

type Limiter interface {
	Allow(ctx context.Context, clientKey string) (bool, error)
}

type RateLimitMiddleware struct {
	limiter    Limiter
	failOpen   bool
	trustProxy bool
	log        *logrus.Logger
}

func NewRateLimitMiddleware(limiter Limiter, failOpen, trustProxy bool, log *logrus.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter:    limiter,
		failOpen:   failOpen,
		trustProxy: trustProxy,
		log:        log,
	}
}

// Handle keys clients on the socket address. With trustProxy set, the
// forwarding headers are applied to RemoteAddr first.
func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	limited := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		allowed, err := m.limiter.Allow(r.Context(), ClientIP(r))
		if err != nil {
			m.log.WithField("request_id", RequestIDFromContext(r.Context())).
				Warnf("Rate limiter unavailable: %+v", err)
			if !m.failOpen {
				response.Reply(w, http.StatusServiceUnavailable, chat.ServerErrorReply)
				return
			}
			allowed = true
		}

		if !allowed {
			response.Reply(w, http.StatusTooManyRequests, chat.RateLimitedReply)
			return
		}

		next.ServeHTTP(w, r)
	})

	if m.trustProxy {
		return handlers.ProxyHeaders(limited)
	}
	return limited
}

// ClientIP returns the host part of RemoteAddr.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
