package ratelimit

import (
	"sync"
	"time"
)

// окно фиксированного размера для одного идентификатора
type window struct {
	count   int
	resetAt time.Time
}

// Limiter ограничивает частоту мутирующих вызовов на актора
// (user id, IP или их комбинация). Состояние живёт в памяти процесса:
// для multi-instance деплоя нужен общий стор, здесь это сознательно
// не решается.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window

	// счётчик вызовов до следующей чистки истёкших окон
	callsUntilPurge int

	now func() time.Time
}

const purgeEvery = 1000

func NewLimiter() *Limiter {
	return &Limiter{
		windows:         make(map[string]*window),
		callsUntilPurge: purgeEvery,
		now:             time.Now,
	}
}

// Allow возвращает true, если вызов для identifier укладывается в
// limit за windowSize. Первый вызов или истёкшее окно сбрасывают
// счётчик в 1 и открывают новое окно.
func (l *Limiter) Allow(identifier string, limit int, windowSize time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.maybePurge(now)

	w, ok := l.windows[identifier]
	if !ok || now.After(w.resetAt) {
		l.windows[identifier] = &window{count: 1, resetAt: now.Add(windowSize)}
		return true
	}

	if w.count >= limit {
		return false
	}

	w.count++
	return true
}

// Remaining сколько вызовов осталось в текущем окне
func (l *Limiter) Remaining(identifier string, limit int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[identifier]
	if !ok || l.now().After(w.resetAt) {
		return limit
	}
	if w.count >= limit {
		return 0
	}
	return limit - w.count
}

// Reset сбрасывает окно идентификатора (для тестов)
func (l *Limiter) Reset(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, identifier)
}

// чистим истёкшие окна раз в purgeEvery вызовов, чтобы map не рос
// бесконечно; mu уже взят вызывающим
func (l *Limiter) maybePurge(now time.Time) {
	l.callsUntilPurge--
	if l.callsUntilPurge > 0 {
		return
	}
	l.callsUntilPurge = purgeEvery

	for id, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, id)
		}
	}
}
