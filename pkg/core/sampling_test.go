package core

import (
	"math"
	"math/rand"
	"testing"
)

// fixedSampler replays a fixed list of 2D samples, cycling when exhausted
type fixedSampler struct {
	samples []Vec2
	next    int
}

func (f *fixedSampler) Get1D() float64 { return f.Get2D().X }

func (f *fixedSampler) Get2D() Vec2 {
	s := f.samples[f.next%len(f.samples)]
	f.next++
	return s
}

func TestSampleUniformSphere_UnitLength(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		d := SampleUniformSphere(NewVec2(random.Float64(), random.Float64()))
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("sample %d not unit length: %v (len %f)", i, d, d.Length())
		}
	}
}

func TestSampleUniformSphere_Poles(t *testing.T) {
	tests := []struct {
		name     string
		sample   Vec2
		expected Vec3
	}{
		{"v=0 gives south pole", NewVec2(0.3, 0), NewVec3(0, 0, -1)},
		{"v=1 gives north pole", NewVec2(0.7, 1), NewVec3(0, 0, 1)},
		{"v=0.5 u=0 on equator +X", NewVec2(0, 0.5), NewVec3(1, 0, 0)},
		{"v=0.5 u=0.25 on equator +Y", NewVec2(0.25, 0.5), NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleUniformSphere(tt.sample)
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSampleUniformSphere_MeanNearZero(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	const n = 20000
	sum := Vec3{}
	for i := 0; i < n; i++ {
		sum = sum.Add(SampleUniformSphere(NewVec2(random.Float64(), random.Float64())))
	}
	mean := sum.Multiply(1.0 / n)
	if mean.Length() > 0.05 {
		t.Errorf("Uniform sphere samples should average near origin, got %v", mean)
	}
}

func TestSampleHemisphere_RejectsBelowSurface(t *testing.T) {
	// First sample is the south pole (below a +Z surface), second is the north pole
	sampler := &fixedSampler{samples: []Vec2{NewVec2(0, 0), NewVec2(0, 1)}}
	normal := NewVec3(0, 0, 1)

	d := SampleHemisphere(normal, sampler)
	if d.Dot(normal) <= 0 {
		t.Errorf("Expected direction above surface, got %v", d)
	}
	if sampler.next != 2 {
		t.Errorf("Expected 2 draws (one rejected), got %d", sampler.next)
	}
}

func TestSampleHemisphere_AlwaysAboveNormal(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	normal := NewVec3(1, 1, 0).Normalize()
	for i := 0; i < 500; i++ {
		if d := SampleHemisphere(normal, sampler); d.Dot(normal) <= 0 {
			t.Fatalf("sample %d below surface: %v", i, d)
		}
	}
}
