package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// entri limiter per client; dibersihkan kalau lama tidak dipakai
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const clientTTL = 10 * time.Minute

// RateLimit membatasi request per client (keyed by IP). Dipasang di endpoint
// presensi supaya scanner wajah yang retry agresif tidak membanjiri server.
func RateLimit(r rate.Limit, burst int) echo.MiddlewareFunc {
	var mu sync.Mutex
	clients := map[string]*clientLimiter{}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()

			mu.Lock()
			cl, ok := clients[key]
			if !ok {
				cl = &clientLimiter{limiter: rate.NewLimiter(r, burst)}
				clients[key] = cl
			}
			cl.lastSeen = time.Now()
			// prune sambil jalan; trafik presensi kecil, tidak perlu goroutine
			for k, v := range clients {
				if time.Since(v.lastSeen) > clientTTL {
					delete(clients, k)
				}
			}
			allowed := cl.limiter.Allow()
			mu.Unlock()

			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, map[string]any{"error": "TOO_MANY_REQUESTS"})
			}
			return next(c)
		}
	}
}
