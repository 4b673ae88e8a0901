package core

import (
	"fmt"
	"math/rand"
)

// Change is a single set or delete of one key in one store.
type Change struct {
	StoreKey string
	Version  int64
	Key      []byte
	Value    []byte
	Delete   bool
}

type ChangesetGenerator struct {
	StoreKey         string
	Seed             int64
	KeyMean          int
	KeyStdDev        int
	ValueMean        int
	ValueStdDev      int
	InitialSize      int
	FinalSize        int
	Versions         int64
	ChangePerVersion int
	DeleteFraction   float64
}

func (c ChangesetGenerator) Iterator() (*ChangesetIterator, error) {
	if c.Versions < 1 {
		return nil, fmt.Errorf("versions must be at least 1")
	}
	if c.FinalSize < c.InitialSize {
		return nil, fmt.Errorf("final size must be greater than initial size")
	}
	if c.DeleteFraction < 0 || c.DeleteFraction > 1 {
		return nil, fmt.Errorf("delete fraction must be within [0, 1]; got %f", c.DeleteFraction)
	}
	if c.KeyMean < 1 {
		return nil, fmt.Errorf("key mean must be positive")
	}

	itr := &ChangesetIterator{
		gen:  c,
		rand: rand.New(rand.NewSource(c.Seed)),
		seen: map[string]struct{}{},
	}
	// TODO spread the integer division remainder over the versions so FinalSize is hit exactly
	if c.Versions > 1 {
		itr.createsPerVersion = (c.FinalSize - c.InitialSize) / int(c.Versions-1)
	}

	err := itr.Next()
	return itr, err
}

// ChangesetIterator yields the changes of a single store version by
// version. Within a version the order is shuffled.
type ChangesetIterator struct {
	Change  *Change
	Version int64

	rand              *rand.Rand
	gen               ChangesetGenerator
	keys              [][]byte
	seen              map[string]struct{}
	createsPerVersion int
	versionChanges    []*Change
	versionIndex      int
}

// maxKeyAttempts bounds the draws for one unused key. Hitting it means the
// key length distribution has (almost) run out of distinct keys.
const maxKeyAttempts = 10_000

func (itr *ChangesetIterator) nextVersion() error {
	itr.Version++
	itr.versionIndex = 0
	itr.versionChanges = nil

	deletes := int(itr.gen.DeleteFraction * float64(itr.gen.ChangePerVersion))
	updates := itr.gen.ChangePerVersion - deletes

	// only delete and update past version 1
	if itr.Version > 1 {
		deletes = min(deletes, len(itr.keys))
		for i := 0; i < deletes; i++ {
			j := itr.rand.Intn(len(itr.keys))
			itr.versionChanges = append(itr.versionChanges, &Change{
				StoreKey: itr.gen.StoreKey,
				Version:  itr.Version,
				Key:      itr.keys[j],
				Delete:   true,
			})
			itr.keys = append(itr.keys[:j], itr.keys[j+1:]...)
		}

		for i := 0; i < updates && len(itr.keys) > 0; i++ {
			j := itr.rand.Intn(len(itr.keys))
			itr.versionChanges = append(itr.versionChanges, &Change{
				StoreKey: itr.gen.StoreKey,
				Version:  itr.Version,
				Key:      itr.keys[j],
				Value:    itr.genBytes(itr.gen.ValueMean, itr.gen.ValueStdDev),
			})
		}
	}

	var creates int
	if itr.Version == 1 {
		creates = itr.gen.InitialSize
	} else {
		creates = itr.createsPerVersion + deletes
	}
	for i := 0; i < creates; i++ {
		key, err := itr.genKey()
		if err != nil {
			return fmt.Errorf("store %s; version %d: %w", itr.gen.StoreKey, itr.Version, err)
		}
		change := &Change{
			StoreKey: itr.gen.StoreKey,
			Version:  itr.Version,
			Key:      key,
			Value:    itr.genBytes(itr.gen.ValueMean, itr.gen.ValueStdDev),
		}
		itr.versionChanges = append(itr.versionChanges, change)
		itr.keys = append(itr.keys, change.Key)
	}

	itr.rand.Shuffle(len(itr.versionChanges), func(i, j int) {
		itr.versionChanges[i], itr.versionChanges[j] = itr.versionChanges[j], itr.versionChanges[i]
	})
	return nil
}

func (itr *ChangesetIterator) Next() error {
	for itr.versionIndex >= len(itr.versionChanges) {
		if itr.Version == itr.gen.Versions {
			itr.Change = nil
			return nil
		}
		if err := itr.nextVersion(); err != nil {
			itr.Change = nil
			return err
		}
	}

	itr.Change = itr.versionChanges[itr.versionIndex]
	itr.versionIndex++
	return nil
}

func (itr *ChangesetIterator) Valid() bool {
	return itr.Change != nil
}

func (itr *ChangesetIterator) GetChange() *Change {
	return itr.Change
}

// genKey returns a key never produced before by this iterator. Keys of
// deleted entries are not reused either, since a shuffled version could
// otherwise order a re-create before the delete of the same key.
func (itr *ChangesetIterator) genKey() ([]byte, error) {
	for i := 0; i < maxKeyAttempts; i++ {
		key := itr.genBytes(itr.gen.KeyMean, itr.gen.KeyStdDev)
		if _, ok := itr.seen[string(key)]; ok {
			continue
		}
		itr.seen[string(key)] = struct{}{}
		return key, nil
	}
	return nil, fmt.Errorf("key space exhausted after %d keys; no unused key in %d draws",
		len(itr.seen), maxKeyAttempts)
}

func (itr *ChangesetIterator) genBytes(mean, stdDev int) []byte {
	length := int(itr.rand.NormFloat64()*float64(stdDev) + float64(mean))
	// mean - std dev can be negative for skewed data sets; rather than clamping (which piles lengths up
	// at 1) draw again closer to the mean.
	if length < 1 {
		length = int(itr.rand.NormFloat64()*float64(mean/3) + float64(mean))
		if length < 1 {
			length = 1
		}
	}
	b := make([]byte, length)
	itr.rand.Read(b)
	return b
}

// ChangesetIterators interleaves several store iterators. Changes are
// emitted version by version: every store finishes version n before any
// store emits version n+1.
type ChangesetIterators struct {
	iterators []*ChangesetIterator
	idx       int
	Change    *Change
}

func NewChangesetIterators(gens []ChangesetGenerator) (*ChangesetIterators, error) {
	if len(gens) == 0 {
		return nil, fmt.Errorf("must provide at least one generator")
	}

	var iterators []*ChangesetIterator
	versions := gens[0].Versions
	for _, gen := range gens {
		if gen.Versions != versions {
			return nil, fmt.Errorf("all generators must have the same number of versions")
		}
		itr, err := gen.Iterator()
		if err != nil {
			return nil, fmt.Errorf("store %s: %w", gen.StoreKey, err)
		}
		iterators = append(iterators, itr)
	}

	itr := &ChangesetIterators{
		iterators: iterators,
	}
	if err := itr.Next(); err != nil {
		return nil, err
	}
	return itr, nil
}

func (itr *ChangesetIterators) Next() error {
	live := itr.iterators[:0]
	for _, it := range itr.iterators {
		if it.Valid() {
			live = append(live, it)
		}
	}
	itr.iterators = live

	// terminal condition
	if len(itr.iterators) == 0 {
		itr.Change = nil
		return nil
	}

	version := itr.iterators[0].Change.Version
	for _, it := range itr.iterators[1:] {
		version = min(version, it.Change.Version)
	}

	// round robin over the stores still emitting the lowest version
	for i := range itr.iterators {
		j := (itr.idx + i) % len(itr.iterators)
		cur := itr.iterators[j]
		if cur.Change.Version != version {
			continue
		}
		itr.Change = cur.Change
		itr.idx = j + 1
		return cur.Next()
	}
	return fmt.Errorf("no iterator at version %d", version)
}

func (itr *ChangesetIterators) Valid() bool {
	return itr.Change != nil
}

func (itr *ChangesetIterators) GetChange() *Change {
	return itr.Change
}
