package pq_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlath/pq"
)

// BenchmarkQueue_PushPop measures N pushes followed by N pops.
func BenchmarkQueue_PushPop(b *testing.B) {
	const n = 10000
	r := rand.New(rand.NewSource(42))
	prios := make([]float64, n)
	for i := range prios {
		prios[i] = r.Float64()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pq.New[int]()
		for task, p := range prios {
			q.Push(task, p)
		}
		for !q.IsEmpty() {
			_, _ = q.Pop()
		}
	}
}

// BenchmarkQueue_DecreaseKey measures repeated priority updates on a fixed task set.
func BenchmarkQueue_DecreaseKey(b *testing.B) {
	const n = 1000
	q := pq.New[int]()
	for task := 0; task < n; task++ {
		q.Push(task, float64(n))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i%n, float64(n-i%n))
	}
}
