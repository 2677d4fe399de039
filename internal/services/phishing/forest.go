package phishing

import (
	"encoding/json"
	"fmt"

	"cypher/internal/features"
)

// Tree is one decision tree in scikit-learn's flat array layout. Node 0 is
// the root; leaves have ChildrenLeft == -1.
type Tree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

// Forest is the serialized classifier artifact.
type Forest struct {
	Version      string   `json:"version"`
	NFeatures    int      `json:"n_features"`
	FeatureNames []string `json:"feature_names,omitempty"`
	Classes      []int    `json:"classes"`
	Trees        []Tree   `json:"trees"`

	positive int
}

// ParseForest decodes and validates a forest artifact.
func ParseForest(data []byte) (*Forest, error) {
	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidModel, err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Forest) validate() error {
	if f.NFeatures != features.Count {
		return fmt.Errorf("%w: expected %d features, artifact has %d", ErrInvalidModel, features.Count, f.NFeatures)
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("%w: no trees", ErrInvalidModel)
	}
	if len(f.Classes) == 0 {
		f.Classes = []int{0, positiveClass}
	}

	f.positive = -1
	for i, c := range f.Classes {
		if c == positiveClass {
			f.positive = i
		}
	}
	if f.positive < 0 {
		return fmt.Errorf("%w: class %d missing", ErrInvalidModel, positiveClass)
	}

	for i := range f.Trees {
		if err := f.Trees[i].validate(len(f.Classes)); err != nil {
			return fmt.Errorf("%w: tree %d: %v", ErrInvalidModel, i, err)
		}
	}
	return nil
}

func (t *Tree) validate(nClasses int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return fmt.Errorf("empty tree")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("node arrays differ in length")
	}

	for node := 0; node < n; node++ {
		if len(t.Value[node]) != nClasses {
			return fmt.Errorf("node %d has %d class weights, want %d", node, len(t.Value[node]), nClasses)
		}
		left, right := t.ChildrenLeft[node], t.ChildrenRight[node]
		if left == leafNode {
			if right != leafNode {
				return fmt.Errorf("node %d has a single child", node)
			}
			continue
		}
		// Children always follow their parent, so traversal terminates.
		if left <= node || left >= n || right <= node || right >= n {
			return fmt.Errorf("node %d has out-of-order children", node)
		}
		if f := t.Feature[node]; f < 0 || f >= features.Count {
			return fmt.Errorf("node %d splits on unknown feature %d", node, f)
		}
	}
	return nil
}

// PredictProba returns the mean positive-class probability over all trees.
func (f *Forest) PredictProba(x []float64) (float64, error) {
	if len(x) != f.NFeatures {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFeatureMismatch, len(x), f.NFeatures)
	}

	var sum float64
	for i := range f.Trees {
		sum += f.Trees[i].leafProbability(x, f.positive)
	}
	return clamp01(sum / float64(len(f.Trees))), nil
}

func (t *Tree) leafProbability(x []float64, positive int) float64 {
	node := 0
	for t.ChildrenLeft[node] != leafNode {
		// scikit-learn compares in float32.
		if float64(float32(x[t.Feature[node]])) <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}

	weights := t.Value[node]
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	return weights[positive] / total
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
