package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"adminpanel_backend/internal/appErrors"
)

// RateLimiter - скользящее окно по IP клиента.
// Храним отметки времени запросов за последнюю минуту,
// устаревшие вычищаются лениво при следующем обращении того же IP.
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
}

func NewRateLimiter(limitPerMinute int) *RateLimiter {
	return &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limitPerMinute,
		window:   time.Minute,
		now:      time.Now,
	}
}

// Allow регистрирует запрос и сообщает, помещается ли он в окно
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	timestamps := rl.requests[key]
	fresh := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			fresh = append(fresh, ts)
		}
	}

	if len(fresh) >= rl.limit {
		rl.requests[key] = fresh
		return false
	}

	rl.requests[key] = append(fresh, now)
	return true
}

// Middleware возвращает gin-обработчик, отвечающий 429 при превышении лимита
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			appErrors.HandleError(c, appErrors.ErrRateLimitExceeded)
			c.Abort()
			return
		}
		c.Next()
	}
}
