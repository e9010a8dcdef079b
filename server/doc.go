// Package server exposes the catalog over HTTP with gin.
//
// # Routes
//
//	GET  /health                        liveness and live catalog version
//	GET  /api/categories                enabled categories with tool counts
//	GET  /api/tools                     listing (category=) or search (q=);
//	                                    status=, pricing=, processing= and
//	                                    api_required= narrow the result
//	GET  /api/tools/:category/:slug     one tool; 404 when not routable
//	GET  /api/featured                  featured tools (limit=)
//	GET  /api/new                       new tools (limit=)
//	GET  /api/top                       ranked tools (limit=, category=)
//	GET  /api/catalog                   diagnostic dump
//	GET  /api/stats                     index and reload statistics
//	POST /api/prompt/:task              LLM forwarding, rate limited per IP
//	GET  /metrics                       Prometheus
//
// Every response carries an X-Request-ID header. An incoming X-Request-ID is
// echoed; otherwise a UUID is generated.
package server
