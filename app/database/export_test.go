package database

import "time"

// SetNow overrides the clock used to stamp rows and returns a func restoring it.
func SetNow(fn func() time.Time) (restore func()) {
	prev := now
	now = fn
	return func() { now = prev }
}

// SetScoreBatchSize overrides how many idea ids go into one score query.
func SetScoreBatchSize(n int) (restore func()) {
	prev := scoreBatchSize
	scoreBatchSize = n
	return func() { scoreBatchSize = prev }
}
