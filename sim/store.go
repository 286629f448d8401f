package sim

import "sort"

// Bucket is a read-only view of all particles sharing one integer mass.
// Size is the particle mass, Count the multiplicity, and CollisionRate
// the per-particle aggregated collision rate maintained by rateindex.go.
type Bucket struct {
	Size          int
	Count         int
	CollisionRate float64
}

// ParticleStore is the bucketed-by-size container for the ensemble. Sizes
// below sSmall live in a dense, directly-indexed region where logical
// index equals size; sizes at or above sSmall live in a packed dynamic
// slice addressed by a size->position index, removed via swap-with-last.
//
// ParticleStore never evaluates the collision kernel itself — callers
// (rateindex.go) compute rates and pass them in; ParticleStore only owns
// bucket storage, identity, and the logical-index space.
type ParticleStore struct {
	sSmall  int
	dense   []Bucket       // len == sSmall; dense[i].Size == i always
	dynamic []Bucket       // Size >= sSmall, unordered
	dynPos  map[int]int    // size -> position in dynamic, only for big sizes
	total   int            // 1 + max logical index touched with Count>0; reset to sSmall+len(dynamic) when a dynamic bucket is dropped
}

// NewParticleStore creates a store whose dense region spans sizes
// [0, sSmall). Size 0 is never inserted (sizes are strictly positive) and
// exists only as a permanent, always-zero-count sentinel at logical index
// 0, matching the reference implementation's indexing scheme where a
// bucket's logical index equals its size in the dense region.
func NewParticleStore(sSmall int) *ParticleStore {
	dense := make([]Bucket, sSmall)
	for i := range dense {
		dense[i].Size = i
	}
	return &ParticleStore{
		sSmall: sSmall,
		dense:  dense,
		dynPos: make(map[int]int),
	}
}

// Len returns the current logical-index bound: the caller must iterate
// indices [0, Len()) to visit every bucket that might hold particles.
// This is total_size in spec terms: a conservative upper bound that can
// include stale zero-count dense buckets.
func (s *ParticleStore) Len() int { return s.total }

// SSmall returns the dense-region size threshold this store was built with.
func (s *ParticleStore) SSmall() int { return s.sSmall }

// at returns a pointer to the bucket at logical index i for in-place
// mutation; i must be < Len().
func (s *ParticleStore) at(i int) *Bucket {
	if i < s.sSmall {
		return &s.dense[i]
	}
	return &s.dynamic[i-s.sSmall]
}

// Get returns a copy of the bucket at logical index i.
func (s *ParticleStore) Get(i int) Bucket {
	return *s.at(i)
}

// SizeAt, CountAt and RateAt are small accessors used by the hot O(S)
// loops in rateindex.go and sampler.go; they avoid materializing a Bucket
// copy when only one field is needed.
func (s *ParticleStore) SizeAt(i int) int { return s.at(i).Size }
func (s *ParticleStore) CountAt(i int) int { return s.at(i).Count }
func (s *ParticleStore) RateAt(i int) float64 { return s.at(i).CollisionRate }

// SetRateAt overwrites the collision rate stored at logical index i.
func (s *ParticleStore) SetRateAt(i int, rate float64) { s.at(i).CollisionRate = rate }

// AddRateAt adds delta to the collision rate stored at logical index i.
func (s *ParticleStore) AddRateAt(i int, delta float64) { s.at(i).CollisionRate += delta }

// IndexOfSize returns the logical index currently holding the bucket for
// the given size, and whether that bucket exists (count may be 0 for a
// dense sentinel).
func (s *ParticleStore) IndexOfSize(size int) (int, bool) {
	if size < s.sSmall {
		return size, true
	}
	pos, ok := s.dynPos[size]
	if !ok {
		return 0, false
	}
	return s.sSmall + pos, true
}

// Insert implements the ParticleStore.insert contract: if a bucket for
// size already exists, its count is incremented by one and its collision
// rate overwritten with rate; otherwise a new bucket is created with
// count 1. Returns the logical index of the (possibly new) bucket.
func (s *ParticleStore) Insert(size int, rate float64) int {
	if size < s.sSmall {
		s.dense[size].Count++
		s.dense[size].CollisionRate = rate
		if size+1 > s.total {
			s.total = size + 1
		}
		return size
	}

	if pos, ok := s.dynPos[size]; ok {
		s.dynamic[pos].Count++
		s.dynamic[pos].CollisionRate = rate
		return s.sSmall + pos
	}

	s.dynamic = append(s.dynamic, Bucket{Size: size, Count: 1, CollisionRate: rate})
	pos := len(s.dynamic) - 1
	s.dynPos[size] = pos
	if bound := s.sSmall + len(s.dynamic); bound > s.total {
		s.total = bound
	}
	return s.sSmall + pos
}

// InsertMonomerBatch adds delta to the monomer bucket's count without
// touching its collision rate (addMonomers sets the rate with the Insert
// call that precedes this one as part of its combined update). Size 1
// always lives in the dense region per invariant I3.
func (s *ParticleStore) InsertMonomerBatch(delta int) {
	s.dense[1].Count += delta
}

// Remove decrements the count at logical index i by one. If i addresses
// the dynamic region and the count reaches zero, the bucket is removed
// via swap-with-last: the logical indices of other dynamic buckets may
// change as a result, so callers must never retain a logical index across
// a Remove call.
func (s *ParticleStore) Remove(i int) {
	if i < s.sSmall {
		s.dense[i].Count--
		return
	}

	pos := i - s.sSmall
	s.dynamic[pos].Count--
	if s.dynamic[pos].Count != 0 {
		return
	}

	removedSize := s.dynamic[pos].Size
	lastPos := len(s.dynamic) - 1
	if pos != lastPos {
		s.dynamic[pos] = s.dynamic[lastPos]
		s.dynPos[s.dynamic[pos].Size] = pos
	}
	s.dynamic = s.dynamic[:lastPos]
	delete(s.dynPos, removedSize)
	s.total = s.sSmall + len(s.dynamic)
}

// Distribution returns every bucket with Count > 0, ordered ascending by
// size. The dense region is already size-ordered by construction; the
// dynamic region is sorted on each call since swap-with-last removal does
// not preserve order.
func (s *ParticleStore) Distribution() []Bucket {
	out := make([]Bucket, 0, len(s.dynamic)+8)
	for i := 1; i < s.sSmall && i < s.total; i++ {
		if s.dense[i].Count > 0 {
			out = append(out, s.dense[i])
		}
	}

	dyn := make([]Bucket, 0, len(s.dynamic))
	for _, b := range s.dynamic {
		if b.Count > 0 {
			dyn = append(dyn, b)
		}
	}
	sort.Slice(dyn, func(i, j int) bool { return dyn[i].Size < dyn[j].Size })

	return append(out, dyn...)
}
