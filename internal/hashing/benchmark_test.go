package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

var benchFENPositions = map[string]string{
	"Initial": engine.InitialFEN,
	"Midgame": "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1",
	"Endgame": "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkHash(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			board, _ := engine.NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Hash(board)
			}
		})
	}
}

func BenchmarkThreadSafeTable(b *testing.B) {
	table := NewThreadSafeTable(0)
	b.RunParallel(func(pb *testing.PB) {
		var i uint64
		for pb.Next() {
			key := Key{Hash: i % 1024, Depth: 3}
			if _, ok := table.Lookup(key); !ok {
				table.Store(key, i)
			}
			i++
		}
	})
}
