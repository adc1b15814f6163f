// Package httpcache avoids redundant network calls by caching HTTP GET
// responses in memory, keyed by the request signature (method and URL).
//
// Transport implements http.RoundTripper and composes with any HTTP
// client. Responses served from the cache carry an "X-Cache: HIT"
// header. Only 200 responses are stored; non-GET methods and error
// statuses pass through to the underlying transport.
//
// # Usage
//
//	store := cache.New[*httpcache.Entry](
//	    cache.WithMaxMemory(16 << 20),
//	    cache.WithDefaultTTL(time.Minute),
//	)
//	client := &http.Client{
//	    Transport: httpcache.NewTransport(store),
//	}
//
// The backing cache's budgets and telemetry apply as usual: response
// bodies count against the memory budget, and the admin endpoints report
// hit rates for the request layer like for any other cache.
package httpcache
