// Package commands defines the addrcheck CLI.
//
// Commands
//
//   - parse     Parse a free-text address
//   - place     Parse a place-detail record read from a file or stdin
//   - suggest   Query the places provider for suggestions
//   - resolve   Fetch and parse the place record behind a suggestion
//   - token     Sign a development access token for the HTTP API
//
// Every parse prints the canonical address as indented JSON. With
// --fail-invalid the command exits non-zero when validation errors are found.
package commands
