// Package ratelimiter implements token bucket rate limiting for the HTTP API.
//
// A Limiter draws tokens from a Store, one bucket per key. MemoryStore keeps
// buckets in process and evicts the ones that have been idle for an hour.
// Middleware limits requests by a KeyFunc, usually the client IP, answers
// 429 with a JSON body once a bucket is empty and reports the bucket state
// in X-RateLimit-* headers.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	limiter, err := ratelimiter.New(store, ratelimiter.Config{Capacity: 60, RefillRate: 1, RefillInterval: time.Second})
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP, log))
package ratelimiter
