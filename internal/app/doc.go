// Package app wires application dependencies for the CLI and the server.
//
// It builds the concrete material store, services and remote client from
// Config, exposing them via the Wire struct for commands to use.
package app
