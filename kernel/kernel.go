// Package kernel builds convolution kernels and applies them, along with
// unsharp masking and color matrices, to linear float buffers.
package kernel

import (
	"math"
	"sync"

	"github.com/gogpu/fastscaling"
)

// Kernel is a normalized, odd-length 1-D convolution kernel applied
// separably along both axes.
//
// ThresholdMinChange and ThresholdMaxChange gate each convolved sample: the
// result replaces the original only when the absolute change is at least
// the minimum and, if the maximum is positive, at most the maximum.
type Kernel struct {
	Weights []float32
	Radius  int

	ThresholdMinChange float32
	ThresholdMaxChange float32
}

// New returns a kernel over weights (copied). The length must be odd.
// Weights are used as given; normalize them first if energy must be kept.
func New(weights []float32) (*Kernel, error) {
	if len(weights) == 0 || len(weights)%2 == 0 {
		return nil, fastscaling.Errorf(fastscaling.KindInvalidFilterParameter, "kernel: length %d must be odd", len(weights))
	}
	w := make([]float32, len(weights))
	copy(w, weights)
	return &Kernel{Weights: w, Radius: len(w) / 2}, nil
}

// GaussianNormalized samples the Gaussian density with the given sigma at
// integer offsets [-radius, radius] and normalizes the result to sum to 1.
func GaussianNormalized(sigma float64, radius int) (*Kernel, error) {
	if !(sigma > 0) || math.IsInf(sigma, 0) || radius < 0 {
		return nil, fastscaling.Errorf(fastscaling.KindInvalidFilterParameter,
			"kernel: gaussian sigma %v radius %d", sigma, radius)
	}
	size := radius*2 + 1
	w := make([]float32, size)
	twoSigmaSq := 2 * sigma * sigma

	vals := make([]float64, size)
	var sum float64
	for i := range vals {
		x := float64(i - radius)
		vals[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += vals[i]
	}
	for i, v := range vals {
		w[i] = float32(v / sum)
	}
	return &Kernel{Weights: w, Radius: radius}, nil
}

// Box returns a uniform kernel of 2*radius+1 taps.
func Box(radius int) (*Kernel, error) {
	if radius < 0 {
		return nil, fastscaling.Errorf(fastscaling.KindInvalidFilterParameter, "kernel: box radius %d", radius)
	}
	size := radius*2 + 1
	w := make([]float32, size)
	for i := range w {
		w[i] = 1 / float32(size)
	}
	return &Kernel{Weights: w, Radius: radius}, nil
}

// Sum returns the sum of the weights.
func (k *Kernel) Sum() float64 {
	var s float64
	for _, w := range k.Weights {
		s += float64(w)
	}
	return s
}

// Normalize scales the weights to sum to 1. A zero-sum kernel is left as is.
func (k *Kernel) Normalize() {
	s := k.Sum()
	if s == 0 {
		return
	}
	for i := range k.Weights {
		k.Weights[i] = float32(float64(k.Weights[i]) / s)
	}
}

func (k *Kernel) validate() error {
	if k == nil || len(k.Weights) == 0 || len(k.Weights) != 2*k.Radius+1 {
		return fastscaling.Errorf(fastscaling.KindInvalidFilterParameter, "kernel: malformed kernel")
	}
	return nil
}

// gaussKey identifies a cached Gaussian kernel. Sigma is quantized to 0.01.
type gaussKey struct {
	sigma  int
	radius int
}

// kernelCache caches Gaussian kernels used by unsharp masking.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[gaussKey]*Kernel
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[gaussKey]*Kernel),
		maxLen: maxLen,
	}
}

func (c *kernelCache) get(sigma float64, radius int) (*Kernel, error) {
	key := gaussKey{sigma: int(math.Round(sigma * 100)), radius: radius}

	c.mu.RLock()
	if k, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return k, nil
	}
	c.mu.RUnlock()

	k, err := GaussianNormalized(float64(key.sigma)/100, radius)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Drop half the entries.
		n := 0
		for key := range c.cache {
			delete(c.cache, key)
			n++
			if n >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = k
	c.mu.Unlock()

	return k, nil
}

// CachedGaussian returns a shared Gaussian kernel. Callers must not modify
// the returned kernel.
func CachedGaussian(sigma float64, radius int) (*Kernel, error) {
	return defaultKernelCache.get(sigma, radius)
}
