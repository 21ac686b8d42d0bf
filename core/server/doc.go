// Package server builds the Fiber application.
//
// New applies the server Config (read timeout, body limit), installs the rayid
// middleware and a zap request logger, and renders errors as JSON. Features are mounted
// on the returned app by the start command through the loader.
package server
