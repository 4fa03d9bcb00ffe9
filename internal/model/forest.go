// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package model

import (
	"fmt"
)

// Predictor maps a preprocessed feature vector to a class index.
type Predictor interface {
	Predict(vec []float64) (int, error)
}

// Node is one decision node in an exported tree. A node is a leaf when
// Left and Right are both -1; leaves carry the predicted class index.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Class     int     `json:"class"`
}

// leaf reports whether the node terminates evaluation.
func (n Node) leaf() bool {
	return n.Left < 0 && n.Right < 0
}

// Tree is one exported decision tree, evaluated by walking nodes from
// index 0 until a leaf.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// predict walks the tree for one vector. Structural errors (bad node or
// feature indices) are load-time bugs surfaced as errors rather than
// panics so a corrupt artifact cannot crash the ingestion loop.
func (t *Tree) predict(vec []float64) (int, error) {
	if len(t.Nodes) == 0 {
		return 0, fmt.Errorf("tree has no nodes")
	}
	idx := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		if idx < 0 || idx >= len(t.Nodes) {
			return 0, fmt.Errorf("tree node index %d out of range", idx)
		}
		node := t.Nodes[idx]
		if node.leaf() {
			return node.Class, nil
		}
		if node.Feature < 0 || node.Feature >= len(vec) {
			return 0, fmt.Errorf("tree feature index %d out of range for vector arity %d", node.Feature, len(vec))
		}
		if vec[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
	return 0, fmt.Errorf("tree walk exceeded node count, cycle suspected")
}

// Forest is a pre-trained decision forest evaluated by majority vote.
type Forest struct {
	NFeatures int    `json:"n_features"`
	Trees     []Tree `json:"trees"`
}

// validate checks the forest against the expected feature arity.
func (f *Forest) validate(expectedFeatures int) error {
	if len(f.Trees) == 0 {
		return fmt.Errorf("forest has no trees")
	}
	if f.NFeatures != expectedFeatures {
		return fmt.Errorf("forest expects %d features, pipeline provides %d", f.NFeatures, expectedFeatures)
	}
	return nil
}

// Predict returns the majority-vote class index for one vector.
func (f *Forest) Predict(vec []float64) (int, error) {
	if len(vec) != f.NFeatures {
		return 0, fmt.Errorf("vector arity %d does not match forest arity %d", len(vec), f.NFeatures)
	}

	votes := make(map[int]int, 4)
	for i := range f.Trees {
		class, err := f.Trees[i].predict(vec)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", i, err)
		}
		votes[class]++
	}

	best, bestVotes := 0, -1
	for class, n := range votes {
		// Ties break toward the lower class index for determinism.
		if n > bestVotes || (n == bestVotes && class < best) {
			best, bestVotes = class, n
		}
	}
	return best, nil
}
