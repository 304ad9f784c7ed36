// Package lvlgen generates 22×22 tile puzzle levels: a player must reach a
// key and then a locked exit, avoiding walls and spikes.
//
// The module is organised as small packages, bottom-up:
//
//	rng/      deterministic xoroshiro128+ streams with derivation
//	level/    bitset tiles, the 22×22 grid, validation, .lvl codec, text dump
//	flood/    4-connected flood fill with mask matching and visitors
//	verify/   completability check and reachability reports
//	generate/ additive generators (digger, rooms, scatter) and reverse wall refiners
//	place/    entity placers (blind and reachability-verified)
//	recipe/   named generator pipelines, retries and concurrent batches
//	store/    level persistence (JSON file or PostgreSQL)
//	server/   websocket API over recipes, verification and storage
//
// Commands live under cmd/: lvlgen (CLI) and lvlserver (websocket server).
//
// Quick start:
//
//	rec, _ := recipe.Lookup("digger")
//	res, err := recipe.Generate(ctx, rec, recipe.Seed{A: 1, B: 1})
//	if err != nil { ... }
//	fmt.Print(res.Level)
package lvlgen
