// Package admin exposes a cache over HTTP for operators and monitoring
// dashboards: a statistics snapshot, a health verdict, and the two
// mutating operator actions (delete a key, clear the store).
//
// The router consumes the cache through the narrow Store interface, so
// any value type works:
//
//	c := cache.New[*Channel](cache.WithMaxEntries(500))
//	r := admin.NewRouter(c, log)
//
//	var cfg admin.Config
//	config.MustLoad(&cfg)
//	srv := admin.NewServer(cfg, log)
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("admin server stopped", logger.Error(err))
//	}
//
// # Endpoints
//
//   - GET /stats – cache.Stats as JSON
//   - GET /health – cache.Health as JSON; 503 when the verdict is critical
//     so load balancers and probes can react without parsing the body
//   - DELETE /keys/{key} – removes one key; 404 when it was absent
//   - POST /clear – empties the store and resets all counters; 204
//
// Every request carries an X-Request-ID (client-supplied when valid,
// generated otherwise) that is echoed in the response and available to
// the logger via RequestIDExtractor.
package admin
