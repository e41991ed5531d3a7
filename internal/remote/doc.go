// Package remote provides an HTTP implementation of the domain.RemoteClient
// interface used by the combustion CLI.
//
// A thermod server holds a material library and runs calculations on
// request. This package offers a concrete HTTP client for it.
//
// Supported operations include:
//   - Running a calculation.
//   - Fetching one material or the whole library.
//   - Publishing a material.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as *StatusError carrying the HTTP
// method, path, status text and the server's message to aid diagnostics.
package remote
