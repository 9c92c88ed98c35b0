// Package cli implements the boardcli terminal front end: a REPL whose
// commands are the views of the dashboard. Views trigger store fetches,
// stores call the typed API client, and the views re-render from the stores'
// snapshots. Mutating admin commands always re-fetch the current page rather
// than patching cached rows locally.
package cli
