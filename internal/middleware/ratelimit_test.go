package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// limiterAt возвращает лимитер с управляемыми часами
func limiterAt(limit int, clock *time.Time) *RateLimiter {
	rl := NewRateLimiter(limit)
	rl.now = func() time.Time { return *clock }
	return rl
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rl := limiterAt(3, &clock)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d must pass", i)
	}
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rl := limiterAt(2, &clock)

	assert.True(t, rl.Allow("10.0.0.1"))
	clock = clock.Add(30 * time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	// Через 31 секунду первый запрос выпадает из окна
	clock = clock.Add(31 * time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))

	// Но второй еще внутри окна
	assert.False(t, rl.Allow("10.0.0.1"))

	// Спустя минуту тишины окно полностью пустое
	clock = clock.Add(2 * time.Minute)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rl := limiterAt(1, &clock)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	// Другой IP лимитируется отдельно
	assert.True(t, rl.Allow("10.0.0.2"))
}
