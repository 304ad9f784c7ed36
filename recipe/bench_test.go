package recipe

import (
	"context"
	"testing"
)

func benchmarkRecipe(b *testing.B, name string) {
	rec, err := Lookup(name)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(ctx, rec, Seed{uint64(i), 1}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_Classic(b *testing.B) { benchmarkRecipe(b, "classic") }
func BenchmarkGenerate_Digger(b *testing.B)  { benchmarkRecipe(b, "digger") }
func BenchmarkGenerate_Rooms(b *testing.B)   { benchmarkRecipe(b, "rooms") }
func BenchmarkGenerate_Dense(b *testing.B)   { benchmarkRecipe(b, "dense") }

// BenchmarkBatch_Digger measures a 16-level concurrent batch.
func BenchmarkBatch_Digger(b *testing.B) {
	rec, _ := Lookup("digger")
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Batch(ctx, rec, Seed{uint64(i), 2}, 16); err != nil {
			b.Fatal(err)
		}
	}
}
