// Package middleware contains HTTP middleware for the Fiber application.
//
//   - rayid: tags every request with a ray id, stored in the context locals and echoed
//     in the X-Ray-ID response header, so request logs can be correlated.
package middleware
