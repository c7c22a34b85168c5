package dataset

import (
	"fmt"
	"path/filepath"
)

// Filename templates for the pose files of a frame; the %06d is the
// zero-padded frame index. Ground truth and the three pipeline stages share
// the index but nothing else.
const (
	GroundTruthPoseTemplate = "frame-%06d.pose.txt"
	RelocPoseTemplate       = "pose-%06d.reloc.txt"
	ICPPoseTemplate         = "pose-%06d.icp.txt"
	FinalPoseTemplate       = "pose-%06d.final.txt"
)

// SequentialPathGenerator builds paths inside a folder for a monotonically
// increasing frame index. It never touches the filesystem, so callers decide
// what a missing path means.
type SequentialPathGenerator struct {
	dir   string
	index int
}

// NewSequentialPathGenerator returns a generator rooted at dir, starting at
// frame index zero.
func NewSequentialPathGenerator(dir string) *SequentialPathGenerator {
	return &SequentialPathGenerator{dir: dir}
}

// Index returns the current frame index.
func (g *SequentialPathGenerator) Index() int {
	return g.index
}

// Path builds the path for the current index from a template such as
// GroundTruthPoseTemplate.
func (g *SequentialPathGenerator) Path(template string) string {
	return filepath.Join(g.dir, fmt.Sprintf(template, g.index))
}

// Increment advances the generator to the next frame index.
func (g *SequentialPathGenerator) Increment() {
	g.index++
}
