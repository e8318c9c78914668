// Package noise provides the two deterministic scalar fields used by world
// generation: a fractal 2D heightmap and a 3D volume mask.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

const minScale = 0.0001

// Sampler evaluates both fields for one seed. It holds no mutable state after
// construction and is safe for concurrent use.
type Sampler struct {
	seed    int64
	surface *perlin.Perlin
	volume  opensimplex.Noise
}

// NewSampler builds the permutation tables for seed. The same seed always
// yields the same fields.
func NewSampler(seed int64) *Sampler {
	return &Sampler{
		seed: seed,
		// A single library octave; Heightmap does its own octave sum.
		surface: perlin.NewPerlin(2, 2, 1, seed),
		volume:  opensimplex.New(seed),
	}
}

// Seed returns the seed the sampler was built with.
func (s *Sampler) Seed() int64 {
	return s.seed
}

// Heightmap sums octaves of 2D coherent noise. Each octave samples
// (x/scale*frequency, z/scale*frequency); amplitude is multiplied by
// persistence and frequency by lacunarity after every octave. With power set
// the sum is remapped through exp, skewing the distribution toward lowlands.
//
// Out-of-range parameters are clamped, never rejected.
func (s *Sampler) Heightmap(x, z, scale float64, octaves int, persistence, lacunarity float64, power bool) float64 {
	if scale <= 0 {
		scale = minScale
	}
	if octaves < 1 {
		octaves = 1
	}
	if persistence > 1 {
		persistence = 1
	}
	if persistence < 0 {
		persistence = 0
	}
	if lacunarity < 1 {
		lacunarity = 1
	}

	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	for i := 0; i < octaves; i++ {
		sampleX := x / scale * frequency
		sampleZ := z / scale * frequency
		sum += s.surface.Noise2D(sampleX, sampleZ) * amplitude

		amplitude *= persistence
		frequency *= lacunarity
	}

	if power {
		sum = math.Exp(sum)
	}
	return sum
}

// Volume sums octaves of 3D simplex noise, doubling the sample frequency for
// every octave. Callers pre-scale the coordinates.
func (s *Sampler) Volume(octaves int, x, y, z float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	sum := 0.0
	frequency := 1.0
	for i := 0; i < octaves; i++ {
		sum += s.volume.Eval3(x*frequency, y*frequency, z*frequency)
		frequency *= 2
	}
	return sum
}
