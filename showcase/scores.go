package main

import (
	"fmt"
	"math/rand"

	"github.com/go-roster/roster/pkg/scene"
)

// score is the data record the demo list displays.
type score struct {
	Name   string
	Points int
}

// scoreRow is the pooled view instance for one score.
type scoreRow struct {
	scene.NodeBase
	label string
	binds int
}

func (r *scoreRow) Populate(record any) error {
	s, ok := record.(score)
	if !ok {
		return fmt.Errorf("want score, got %T", record)
	}
	r.label = fmt.Sprintf("%-10s %5d", s.Name, s.Points)
	r.binds++
	return nil
}

var scoreRowPrefab = scene.NewPrefab("score_row", func() scene.Instance {
	return &scoreRow{}
})

var names = []string{"ada", "bender", "chell", "dog", "eve", "glados", "hal", "kitt", "marvin", "wall-e"}

// rollScores produces the next frame's data sequence. Length drifts up
// and down so the pool keeps recycling.
func rollScores(frame int) []score {
	n := 2 + (frame*3)%7
	out := make([]score, n)
	for i := range out {
		out[i] = score{
			Name:   names[i%len(names)],
			Points: rand.Intn(10000),
		}
	}
	return out
}
