// Package recommend implements user-based collaborative filtering over a
// snapshot of product reviews.
package recommend

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/storefront/ecommerce-services/internal/core/domain"
)

// Score returns up to topN products for the target customer, best first.
//
// Reviews are expected in id order: when a customer rated the same product
// twice the later review wins. Only products with a positive score are
// returned; ties are broken by ascending product id.
func Score(reviews []domain.Review, target uint, topN int) []domain.Recommendation {
	if len(reviews) == 0 || topN <= 0 {
		return []domain.Recommendation{}
	}

	customers := indexOf(reviews, func(r domain.Review) uint { return r.CustomerID })
	products := indexOf(reviews, func(r domain.Review) uint { return r.ProductID })

	row, ok := customers.pos[target]
	if !ok {
		return []domain.Recommendation{}
	}

	ratings := mat.NewDense(len(customers.ids), len(products.ids), nil)
	for _, r := range reviews {
		ratings.Set(customers.pos[r.CustomerID], products.pos[r.ProductID], float64(r.Rating))
	}

	sim := similarityRow(ratings, row)

	var scores mat.VecDense
	scores.MulVec(ratings.T(), sim)

	out := make([]domain.Recommendation, 0, len(products.ids))
	for j, id := range products.ids {
		if s := scores.AtVec(j); s > 0 {
			out = append(out, domain.Recommendation{ProductID: id, Score: s})
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Score != out[b].Score {
			return out[a].Score > out[b].Score
		}
		return out[a].ProductID < out[b].ProductID
	})

	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// similarityRow computes the cosine similarity between row i of m and every
// row of m. A row of zeros is similar to nothing, itself included.
func similarityRow(m *mat.Dense, i int) *mat.VecDense {
	rows, _ := m.Dims()
	target := m.RawRowView(i)
	targetNorm := floats.Norm(target, 2)

	sim := mat.NewVecDense(rows, nil)
	if targetNorm == 0 {
		return sim
	}
	for k := 0; k < rows; k++ {
		other := m.RawRowView(k)
		n := floats.Norm(other, 2)
		if n == 0 {
			continue
		}
		sim.SetVec(k, floats.Dot(target, other)/(targetNorm*n))
	}
	return sim
}

type index struct {
	ids []uint
	pos map[uint]int
}

// indexOf assigns dense zero-based positions to the distinct ids picked from
// reviews, in ascending id order.
func indexOf(reviews []domain.Review, pick func(domain.Review) uint) index {
	pos := make(map[uint]int)
	for _, r := range reviews {
		pos[pick(r)] = 0
	}
	ids := make([]uint, 0, len(pos))
	for id := range pos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	for i, id := range ids {
		pos[id] = i
	}
	return index{ids: ids, pos: pos}
}
