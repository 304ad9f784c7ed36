// Command lvlgen generates, checks and stores 22×22 puzzle levels.
//
//	lvlgen -recipe rooms -seed-a 7 -seed-b 1 -o level.lvl -dump
//	lvlgen -recipe digger -n 16 -workers 4 -o out/
//	lvlgen -check level.lvl
//	lvlgen -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/katalvlaran/lvlgen/level"
	"github.com/katalvlaran/lvlgen/recipe"
	"github.com/katalvlaran/lvlgen/store"
	"github.com/katalvlaran/lvlgen/verify"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	recipe  string
	seedA   uint64
	seedB   uint64
	n       int
	workers int
	out     string
	dump    bool
	check   string
	list    bool
	save    string
	db      string
}

func parse(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("lvlgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.recipe, "recipe", "classic", "Generation recipe (see -list)")
	fs.Uint64Var(&o.seedA, "seed-a", 1, "First seed word")
	fs.Uint64Var(&o.seedB, "seed-b", 1, "Second seed word")
	fs.IntVar(&o.n, "n", 1, "Number of levels; more than one derives a seed per level")
	fs.IntVar(&o.workers, "workers", runtime.GOMAXPROCS(0), "Concurrent generators for -n > 1")
	fs.StringVar(&o.out, "o", "", "Output .lvl file, or directory when -n > 1 (default stdout)")
	fs.BoolVar(&o.dump, "dump", false, "Print the text dump of each level to stderr")
	fs.StringVar(&o.check, "check", "", "Report on an existing .lvl file instead of generating")
	fs.BoolVar(&o.list, "list", false, "List recipes and exit")
	fs.StringVar(&o.save, "save", "", "Also store the level under this name (-n 1 only)")
	fs.StringVar(&o.db, "db", "levels.json", "JSON level store used by -save")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.n < 1 {
		return o, fmt.Errorf("-n must be at least 1, got %d", o.n)
	}
	if o.save != "" && o.n != 1 {
		return o, errors.New("-save needs -n 1")
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parse(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	switch {
	case o.list:
		for _, name := range recipe.Names() {
			rec, _ := recipe.Lookup(name)
			fmt.Fprintf(stdout, "%-8s %s\n", name, rec.Description)
		}
		return 0
	case o.check != "":
		return check(o.check, stdout, stderr)
	}

	rec, err := recipe.Lookup(o.recipe)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	seed := recipe.Seed{A: o.seedA, B: o.seedB}

	var results []*recipe.Result
	if o.n == 1 {
		res, err := recipe.Generate(ctx, rec, seed)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		results = []*recipe.Result{res}
	} else {
		results, err = recipe.Batch(ctx, rec, seed, o.n, recipe.WithWorkers(max(1, o.workers)))
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	for i, res := range results {
		fmt.Fprintf(stderr, "level %d: recipe=%s seed=(%d,%d) tries=%d completable=%t\n",
			i, res.Recipe, res.Seed.A, res.Seed.B, res.Tries, res.Completable)
		if o.dump {
			res.Level.Dump(stderr)
		}
	}
	if err := write(o, results, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if o.save != "" {
		if err := save(ctx, o, results[0]); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}

// write sends one level to -o or stdout, or a batch to files in the -o
// directory (concatenated on stdout without -o).
func write(o options, results []*recipe.Result, stdout io.Writer) error {
	switch {
	case o.out == "":
		for _, res := range results {
			if err := level.Write(stdout, res.Level); err != nil {
				return err
			}
		}
		return nil
	case len(results) == 1:
		return level.WriteFile(o.out, results[0].Level)
	}
	if err := os.MkdirAll(o.out, 0o755); err != nil {
		return err
	}
	for i, res := range results {
		path := filepath.Join(o.out, fmt.Sprintf("%s-%03d.lvl", res.Recipe, i))
		if err := level.WriteFile(path, res.Level); err != nil {
			return err
		}
	}
	return nil
}

func save(ctx context.Context, o options, res *recipe.Result) error {
	js, err := store.NewJSONStore(o.db)
	if err != nil {
		return err
	}
	defer js.Close()
	return js.Save(ctx, &store.Record{
		Meta: store.Meta{
			Name:        o.save,
			Recipe:      res.Recipe,
			SeedA:       res.Seed.A,
			SeedB:       res.Seed.B,
			Completable: res.Completable,
		},
		Level: res.Level,
	})
}

func check(path string, stdout, stderr io.Writer) int {
	l, err := level.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	l.Dump(stdout)
	r := verify.Inspect(l)
	fmt.Fprintf(stdout, "player:      %v (present=%t)\n", r.Player, r.HasPlayer)
	fmt.Fprintf(stdout, "completable: %t (%s)\n", r.Completable, r.Reason())
	fmt.Fprintf(stdout, "reachable:   %d tiles, %d/%d entities\n", r.Reachable, r.ReachableEntities, r.Entities)
	fmt.Fprintf(stdout, "paths:       key=%d exit=%d\n", r.KeyPath, r.ExitPath)
	if err := l.Validate(); err != nil {
		fmt.Fprintf(stdout, "invalid:     %v\n", err)
	}
	if !r.Completable {
		return 1
	}
	return 0
}
