// SPDX-License-Identifier: EPL-2.0

package perturb

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ConfigEntry is one resolved pipeline entry: a registered perturbation
// name, its application probability, and its constructor parameters.
type ConfigEntry struct {
	Name   string
	Prob   float64
	Params Params
}

// FromEntries builds an augmentor by resolving each entry through reg,
// preserving order. Probabilities are clamped to [0, 1] by NewAugmentor.
func FromEntries(reg *Registry, entries []ConfigEntry) (*Augmentor, error) {
	steps := make([]Step, 0, len(entries))
	for _, e := range entries {
		p, err := reg.Construct(e.Name, e.Params)
		if err != nil {
			return nil, err
		}
		steps = append(steps, Step{Prob: e.Prob, Perturbation: p})

		logrus.WithFields(logrus.Fields{
			"perturbation": e.Name,
			"prob":         e.Prob,
		}).Debug("added augmentation pipeline step")
	}
	return NewAugmentor(steps...), nil
}

// FromYAML reads an ordered mapping of perturbation name to parameters
// and builds an augmentor against reg. Each parameter mapping must carry
// a "prob" key; the remaining keys go to the registered constructor
// verbatim. Entry order in the document is the application order.
//
//	gain:
//	  prob: 0.5
//	  min_gain_dbfs: -10
//	  max_gain_dbfs: 10
//	white_noise:
//	  prob: 1.0
//	  min_level_db: -90
//	  max_level_db: -46
func FromYAML(r io.Reader, reg *Registry) (*Augmentor, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("parse augmentation config: %w", err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: augmentation config must be a mapping", ErrInvalidParam)
	}

	entries, err := entriesFromMapping(node)
	if err != nil {
		return nil, err
	}
	return FromEntries(reg, entries)
}

// FromYAMLFile is FromYAML over a file path.
func FromYAMLFile(path string, reg *Registry) (*Augmentor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open augmentation config: %w", err)
	}
	defer f.Close()

	aug, err := FromYAML(f, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return aug, nil
}

// entriesFromMapping walks a YAML mapping node in document order. Plain
// map decoding would lose ordering, and order is the application order.
func entriesFromMapping(node *yaml.Node) ([]ConfigEntry, error) {
	entries := make([]ConfigEntry, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]

		name := keyNode.Value

		var params Params
		if err := valNode.Decode(&params); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidParam, name, err)
		}
		if params == nil {
			params = Params{}
		}

		probVal, ok := params["prob"]
		if !ok {
			return nil, fmt.Errorf("%w: %s: missing required key \"prob\"", ErrInvalidParam, name)
		}
		prob, ok := toFloat(probVal)
		if !ok {
			return nil, fmt.Errorf("%w: %s.prob: want number, got %T", ErrInvalidParam, name, probVal)
		}
		delete(params, "prob")

		entries = append(entries, ConfigEntry{Name: name, Prob: prob, Params: params})
	}

	return entries, nil
}
