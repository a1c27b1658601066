package sampler

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beeckusu/project-music-ear-training-sub000/model"
)

func containsQuality(qs []model.ChordQuality, q model.ChordQuality) bool {
	for _, v := range qs {
		if v == q {
			return true
		}
	}
	return false
}

func containsRoot(roots []model.PitchClass, r model.PitchClass) bool {
	for _, v := range roots {
		if v == r {
			return true
		}
	}
	return false
}

func TestSampleRespectsFilter(t *testing.T) {
	filter := model.ChordFilter{
		Qualities: []model.ChordQuality{model.Major, model.Minor7},
		Roots:     []model.PitchClass{model.C, model.G},
		Octaves:   []int{3, 4},
	}
	s := NewWithSeed(1)

	assert := assert.New(t)
	for i := 0; i < 200; i++ {
		c, err := s.SampleRandom(filter)
		assert.NoError(err)
		assert.True(containsQuality(filter.Qualities, c.Quality))
		assert.True(containsRoot(filter.Roots, c.Root))
		assert.Equal(0, c.Inversion, "inversions are off unless enabled")
		// with inversions off the bass is the root at the requested octave
		assert.Contains(filter.Octaves, c.Bass().Octave)
	}
}

func TestSampleWithInversions(t *testing.T) {
	filter := model.ChordFilter{
		Qualities:         []model.ChordQuality{model.Dominant7},
		Roots:             []model.PitchClass{model.G},
		Octaves:           []int{3},
		IncludeInversions: true,
	}
	s := NewWithSeed(2)

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		c, err := s.SampleRandom(filter)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, c.Inversion, 0)
		assert.Less(t, c.Inversion, c.Quality.NumNotes())
		seen[c.Inversion] = true
	}
	// all four voicings of G7 at octave 3 are reachable
	assert.Len(t, seen, 4)
}

func TestSampleKeyFilter(t *testing.T) {
	key := model.KeyFilter{Tonic: model.C, Scale: model.ScaleMajor}
	filter := model.ChordFilter{
		Qualities: []model.ChordQuality{model.Major, model.Minor, model.Diminished},
		Octaves:   []int{4},
		Key:       &key,
	}
	s := NewWithSeed(3)

	majorRoots := make(map[model.PitchClass]bool)
	for i := 0; i < 300; i++ {
		c, err := s.SampleRandom(filter)
		assert.NoError(t, err)
		for _, n := range c.Notes {
			assert.True(t, key.Contains(n.Class), "%s contains non-diatonic %s", c.DisplayName, n.Class)
		}
		if c.Quality == model.Major {
			majorRoots[c.Root] = true
		}
	}
	// the only diatonic major triads in C major are C, F and G
	assert.Equal(t, map[model.PitchClass]bool{
		model.C: true, model.F: true, model.G: true,
	}, majorRoots)
}

func TestSampleNoValidChords(t *testing.T) {
	// every major13 voicing rooted at octave 8 spills past octave 8
	filter := model.ChordFilter{
		Qualities: []model.ChordQuality{model.Major13},
		Octaves:   []int{8},
	}
	_, err := New().SampleRandom(filter)
	assert.ErrorIs(t, err, ErrNoValidChords)
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	filter := model.ChordFilter{
		Qualities: []model.ChordQuality{model.Major, model.Minor},
		Octaves:   []int{2, 3, 4, 5},
	}
	a := NewWithSeed(42)
	b := NewWithSeed(42)
	for i := 0; i < 20; i++ {
		ca, errA := a.SampleRandom(filter)
		cb, errB := b.SampleRandom(filter)
		assert.NoError(t, errA)
		assert.NoError(t, errB)
		assert.Equal(t, ca, cb)
	}
}

func TestCacheKeyIgnoresListOrder(t *testing.T) {
	a := model.ChordFilter{
		Qualities: []model.ChordQuality{model.Major, model.Minor7},
		Roots:     []model.PitchClass{model.C, model.G},
		Octaves:   []int{4, 3},
	}
	b := model.ChordFilter{
		Qualities: []model.ChordQuality{model.Minor7, model.Major},
		Roots:     []model.PitchClass{model.G, model.C},
		Octaves:   []int{3, 4},
	}
	assert.Equal(t, cacheKey(a), cacheKey(b))
}

func TestCacheKeyWildcardRootsAreDistinct(t *testing.T) {
	wildcard := model.ChordFilter{
		Qualities: []model.ChordQuality{model.Major},
		Octaves:   []int{4},
	}
	explicit := wildcard
	explicit.Roots = model.AllPitchClasses()
	assert.NotEqual(t, cacheKey(wildcard), cacheKey(explicit))
}

func TestClearCache(t *testing.T) {
	filter := model.ChordFilter{
		Qualities: []model.ChordQuality{model.Major},
		Octaves:   []int{4},
	}
	s := NewWithSeed(7)
	_, err := s.SampleRandom(filter)
	assert.NoError(t, err)

	s.ClearCache()
	assert.Empty(t, s.cache)

	_, err = s.SampleRandom(filter)
	assert.NoError(t, err)
}

func TestConcurrentSampling(t *testing.T) {
	filter := model.ChordFilter{
		Qualities:         []model.ChordQuality{model.Major7, model.Minor7},
		Octaves:           []int{3, 4, 5},
		IncludeInversions: true,
	}
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := s.SampleRandom(filter)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}
