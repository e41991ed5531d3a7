// Package main runs thermod, an HTTP server that holds a material library
// and runs combustion calculations against it.
//
// HTTP API
//
//	POST /calculate
//	    Body is a CalculationRequest. Returns the CalculationResult.
//
//	GET /species
//	    Return the whole library ordered by formula.
//
//	GET /species/{formula}
//	    Return one material. The ETag header carries its data fingerprint.
//
//	HEAD /species/{formula}
//	    200 if the material is in the library, 404 otherwise.
//
//	POST /species
//	    Validate and store a material, replacing any previous version.
//
// Behaviour
//
//   - Materials live under --home, or are loaded into memory from --library
//     (changes are then lost on exit).
//   - Responses are JSON. Non-2xx statuses carry {"error": "..."}: 400 for
//     malformed input, 404 for unknown species, 422 when the data cannot be
//     solved (bad intervals, flat or non-physical balance), 504 when a
//     calculation outlives --calc-timeout.
//   - A lightweight access log records method, path, remote, status, bytes and
//     duration for each request.
//   - The default listen address is :8080.
package main
