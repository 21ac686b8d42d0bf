// Package catalog is a client for the remote movie catalog (TMDB search API).
//
// A search issues a single GET with the `query` and `api_key` parameters and decodes
// the `results` list. Failures are logged and returned to the caller; there is no
// retry. Concurrent searches for the same term are collapsed into one request.
//
// # Usage
//
//	client := catalog.NewClient(cfg.Catalog, nil, logger)
//	results, err := client.Search(ctx, "alien")
package catalog
