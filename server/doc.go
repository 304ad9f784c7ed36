// Package server exposes level generation over a websocket, and stored
// levels as raw .lvl downloads.
//
// Routes:
//
//   - GET /ws              websocket; JSON envelopes {"type", "payload"}.
//   - GET /levels/{name}   the stored level as application/octet-stream.
//
// Requests and their responses:
//
//   - generate {recipe, seed_a, seed_b, name?} → level; saved when name is set.
//   - load {name}                             → level
//   - list {}                                 → levels
//   - check {tiles}                           → report
//
// Any failure answers with error {code, message}. Each connection has one
// read pump and one write pump; a client that stops draining its buffered
// send channel is disconnected.
package server
