package sampler

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/beeckusu/project-music-ear-training-sub000/chord"
	"github.com/beeckusu/project-music-ear-training-sub000/model"
)

var ErrNoValidChords = errors.New("no chords satisfy the filter")

// Sampler draws uniformly at random from the chords admitted by a filter.
// Enumeration is memoized per filter. The cache and the rng share one mutex:
// concurrent SampleRandom calls may not race on either, and a reader never
// sees a partially populated entry.
type Sampler struct {
	mu    sync.Mutex
	cache map[string][]model.Chord
	rng   *rand.Rand
}

func New() *Sampler {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed fixes the rng seed, mainly so tests can pin the draw sequence.
func NewWithSeed(seed int64) *Sampler {
	return &Sampler{
		cache: make(map[string][]model.Chord),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// SampleRandom enumerates the filter's candidate space (or reuses a cached
// enumeration) and draws one chord, every candidate equally likely. Fails
// with ErrNoValidChords when the filter admits nothing; an empty result is
// never cached.
func (s *Sampler) SampleRandom(filter model.ChordFilter) (model.Chord, error) {
	key := cacheKey(filter)

	s.mu.Lock()
	defer s.mu.Unlock()

	candidates, ok := s.cache[key]
	if !ok {
		candidates = enumerate(filter)
		if len(candidates) == 0 {
			return model.Chord{}, fmt.Errorf("%w: %v", ErrNoValidChords, key)
		}
		s.cache[key] = candidates
	}
	return candidates[s.rng.Intn(len(candidates))], nil
}

// ClearCache drops every memoized enumeration. There is no automatic expiry.
func (s *Sampler) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string][]model.Chord)
}

// enumerate builds every chord the filter admits, discarding combinations the
// builder rejects (octave overflow at high octaves).
func enumerate(filter model.ChordFilter) []model.Chord {
	roots := filter.Roots
	if roots == nil {
		roots = model.AllPitchClasses()
	}

	var res []model.Chord
	for _, quality := range filter.Qualities {
		for _, root := range roots {
			if filter.Key != nil && !diatonic(root, quality, *filter.Key) {
				continue
			}
			maxInversion := 0
			if filter.IncludeInversions {
				maxInversion = quality.NumNotes() - 1
			}
			for _, octave := range filter.Octaves {
				for inversion := 0; inversion <= maxInversion; inversion++ {
					c, err := chord.Build(root, quality, octave, inversion)
					if err != nil {
						continue
					}
					res = append(res, c)
				}
			}
		}
	}
	return res
}

// diatonic reports whether every formula tone of (root, quality) lies in the
// key's scale.
func diatonic(root model.PitchClass, quality model.ChordQuality, key model.KeyFilter) bool {
	for _, interval := range quality.Formula() {
		if !key.Contains(root.Add(interval)) {
			return false
		}
	}
	return true
}

// cacheKey is order-insensitive over the filter's lists, so filters differing
// only in list order share one entry. A nil (wildcard) root list keys
// differently from any explicit list, including all 12 pitch classes.
func cacheKey(filter model.ChordFilter) string {
	qualities := make([]string, len(filter.Qualities))
	for i, q := range filter.Qualities {
		qualities[i] = q.String()
	}
	sort.Strings(qualities)

	rootsKey := "*"
	if filter.Roots != nil {
		roots := make([]string, len(filter.Roots))
		for i, r := range filter.Roots {
			roots[i] = r.String()
		}
		sort.Strings(roots)
		rootsKey = strings.Join(roots, ",")
	}

	octaves := make([]int, len(filter.Octaves))
	copy(octaves, filter.Octaves)
	sort.Ints(octaves)

	keyPart := "none"
	if filter.Key != nil {
		keyPart = filter.Key.Tonic.String() + "-" + filter.Key.Scale.String()
	}

	return fmt.Sprintf("q=%s|r=%s|o=%v|inv=%v|key=%s",
		strings.Join(qualities, ","), rootsKey, octaves, filter.IncludeInversions, keyPart)
}
