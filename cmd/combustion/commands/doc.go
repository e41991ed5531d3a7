// Package commands defines the combustion CLI and wires dependencies for subcommands.
//
// Commands
//
//   - calc                 Reaction enthalpy and adiabatic flame temperature
//   - species import       Load materials from a JSON library file
//   - species export       Write the library to a JSON file
//   - species list         List materials (local, or --remote)
//   - species show         Print one material's records
//   - species rm           Remove a material
//   - species fingerprint  Print a material's data fingerprint
//   - species publish      Push a local material to a thermod server
//   - species pull         Fetch a material from a thermod server
//
// # Implementation
//
// The root command builds the dependency graph (material store, services and
// an optional thermod client) before any subcommand runs. With --library the
// material store is an in-memory copy of that file; otherwise it lives under
// --home. With --server, calc runs on the server.
package commands
