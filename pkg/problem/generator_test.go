package problem

import (
	"math/rand/v2"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/samber/lo"
)

func TestGenerate(t *testing.T) {
	t.Run("Acyclic", func(t *testing.T) {
		g := NewWithT(t)
		for seed := range uint64(20) {
			instance := Generate(rand.New(rand.NewPCG(seed, 0)), 10, 30, 5, 0)
			index := lo.SliceToMap(instance.Operations(), func(op Operation) (Operation, int) {
				return op, lo.IndexOf(instance.Operations(), op)
			})

			g.Expect(instance.Check()).To(Succeed())
			g.Expect(instance.Operations()).To(HaveLen(10))
			g.Expect(instance.OperatorTypes()).To(HaveLen(10))
			g.Expect(instance.DependenceCount()).To(BeNumerically("<=", 30))
			g.Expect(instance.IsCyclic()).To(BeFalse())
			for _, dep := range instance.AllDependences() {
				g.Expect(index[dep.Source]).To(BeNumerically("<", index[dep.Destination]))
			}
			for _, op := range instance.Operations() {
				g.Expect(instance.Latency(op)).To(BeNumerically("<=", 5))
			}
		}
	})

	t.Run("Cyclic", func(t *testing.T) {
		g := NewWithT(t)
		for seed := range uint64(20) {
			instance := Generate(rand.New(rand.NewPCG(seed, 1)), 10, 30, 5, 2)

			g.Expect(instance.Check()).To(Succeed())
			g.Expect(instance.DependenceCount()).To(Equal(30))
			_, ok := MinimumII(instance)
			g.Expect(ok).To(BeTrue())
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		g := NewWithT(t)
		first := Generate(rand.New(rand.NewPCG(7, 7)), 8, 16, 4, 1)
		second := Generate(rand.New(rand.NewPCG(7, 7)), 8, 16, 4, 1)

		g.Expect(second.AllDependences()).To(Equal(first.AllDependences()))
		g.Expect(second.OperatorTypes()).To(Equal(first.OperatorTypes()))
	})

	t.Run("Empty", func(t *testing.T) {
		g := NewWithT(t)
		instance := Generate(rand.New(rand.NewPCG(0, 0)), 0, 10, 4, 1)

		g.Expect(instance.Operations()).To(BeEmpty())
	})
}
