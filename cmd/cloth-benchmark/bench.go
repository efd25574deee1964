package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drape/cloth"
)

const benchDt = 1.0 / 60.0

// scenario is one benchmark run: several identical hanging cloths stepped together
type scenario struct {
	cloths     int
	size       int
	frames     int
	iterations int
}

type result struct {
	scenario
	create    time.Duration
	update    time.Duration
	snapshot  time.Duration
	particles int
	sag       []float64 // bottom-row mean Y of the first cloth, one entry per frame
}

// perFrame is the mean manager Update time
func (r result) perFrame() time.Duration {
	if r.frames == 0 {
		return 0
	}
	return r.update / time.Duration(r.frames)
}

// perParticle is the mean Update cost per particle per frame in nanoseconds
func (r result) perParticle() float64 {
	if r.frames == 0 || r.particles == 0 {
		return 0
	}
	return float64(r.update.Nanoseconds()) / float64(r.frames) / float64(r.particles)
}

func run(sc scenario) result {
	cfg := cloth.DefaultConfig()
	cfg.Width, cfg.Height = sc.size, sc.size
	cfg.SolverIterations = sc.iterations

	m := cloth.NewManager()
	res := result{scenario: sc, sag: make([]float64, 0, sc.frames)}

	var first *cloth.Cloth
	start := time.Now()
	for i := range sc.cloths {
		origin := mgl32.Vec3{float32(i) * float32(sc.size) * cfg.Spacing * 1.5, 0, 0}
		id := m.Create(cfg, origin)
		c, _ := m.Get(id)
		c.PinTopEdge()
		c.AddCollider(cloth.Sphere{
			Center: origin.Add(mgl32.Vec3{float32(sc.size) * cfg.Spacing / 2, -float32(sc.size) * cfg.Spacing / 2, 0.3}),
			Radius: float32(sc.size) * cfg.Spacing / 5,
		})
		res.particles += c.ParticleCount()
		if first == nil {
			first = c
		}
	}
	res.create = time.Since(start)

	for range sc.frames {
		start = time.Now()
		m.Update(benchDt)
		res.update += time.Since(start)

		if first != nil {
			res.sag = append(res.sag, bottomRowMeanY(first))
		}
	}

	start = time.Now()
	for _, c := range m.All() {
		_ = c.Positions()
		_ = c.Indices()
	}
	res.snapshot = time.Since(start)

	return res
}

// bottomRowMeanY averages Y over the last grid row
func bottomRowMeanY(c *cloth.Cloth) float64 {
	w, h := c.Config.Width, c.Config.Height
	if w <= 0 || h <= 0 {
		return 0
	}
	var sum float64
	for x := range w {
		idx, _ := c.ParticleIndex(x, h-1)
		sum += float64(c.Particles[idx].Position.Y())
	}
	return sum / float64(w)
}

// parseIterations reads a comma separated list of positive solver iteration counts
func parseIterations(s string) ([]int, error) {
	var out []int
	for field := range strings.SplitSeq(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid iteration count %q", field)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no iteration counts in %q", s)
	}
	return out, nil
}
