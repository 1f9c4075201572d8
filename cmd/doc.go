// Package cmd implements the command-line interface of oarr. It provides a
// hierarchical command structure with operations for running the server and
// interacting with it as a client.
//
// The package is organized into several subpackages:
//
//   - arr: Commands for overlay array operations (set, set-all, get, info, perf)
//   - demo: Runs the demonstration scenario against a local array
//   - serve: Commands for starting and configuring the oarr server
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// Every flag can also be set with an environment variable OARR_<FLAG>, which may be
// placed in a .env or .env.local file. See oarr -help for a list of all commands.
package cmd
