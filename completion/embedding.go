package completion

import (
	set "github.com/hashicorp/go-set/v3"

	"github.com/velatiq/unispace/sets"
	"github.com/velatiq/unispace/uniform"
)

// Embedding is an immutable witness that e : β → α is uniformly
// inducing (its pullback of α's uniformity is exactly β's) and that
// its image is dense in α. Both facts are validated once by
// NewEmbedding; an Embedding in hand certifies them.
type Embedding[B, A comparable] struct {
	e     func(B) A
	dom   uniform.Space[B]
	cod   uniform.Space[A]
	image *set.Set[A]
}

// NewEmbedding validates e against both spaces.
//
// Errors: ErrNotInducing when comap(e×e, 𝓤α) ≠ 𝓤β; ErrNotDense when
// the closure of e's image is not all of α.
func NewEmbedding[B, A comparable](dom uniform.Space[B], cod uniform.Space[A], e func(B) A) (Embedding[B, A], error) {
	if !uniform.UniformInducing(e, dom.Core, cod.Core) {
		return Embedding[B, A]{}, ErrNotInducing
	}
	image := sets.Image(e, dom.Universe().Set())
	if !cod.Dense(image) {
		return Embedding[B, A]{}, ErrNotDense
	}

	return Embedding[B, A]{e: e, dom: dom, cod: cod, image: image}, nil
}

// Apply evaluates the embedding at b.
func (m Embedding[B, A]) Apply(b B) A { return m.e(b) }

// Dom returns the embedded (dense subspace) side.
func (m Embedding[B, A]) Dom() uniform.Space[B] { return m.dom }

// Cod returns the ambient side.
func (m Embedding[B, A]) Cod() uniform.Space[A] { return m.cod }

// Image returns a copy of the image of the embedding.
func (m Embedding[B, A]) Image() *set.Set[A] { return m.image.Copy() }
