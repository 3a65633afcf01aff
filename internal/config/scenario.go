package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	ballistic "github.com/gehtsoft-usa/go_ballisticlaunch"
	"gopkg.in/yaml.v3"
)

// Scenario is a batch of launches read from a YAML file:
//
//	defaults:
//	  gravity: 9.81
//	  step: 0.001
//	launches:
//	  - name: lob
//	    speed: 12
//	    angle: 70
//	    plot: lob.png
//	  - speed: 30
//	    angle: 10
//	    ascii: true
type Scenario struct {
	Defaults PartialParameters `yaml:"defaults"`
	Launches []ScenarioLaunch  `yaml:"launches"`
}

// ScenarioLaunch is one launch of a scenario and the outputs to render for it.
type ScenarioLaunch struct {
	Name              string `yaml:"name"`
	PartialParameters `yaml:",inline"`
	Plot              string `yaml:"plot,omitempty"`
	Animation         string `yaml:"animation,omitempty"`
	ASCII             bool   `yaml:"ascii,omitempty"`

	// Parameters is filled by ParseScenario with the merged values.
	Parameters ballistic.LaunchParameters `yaml:"-"`
}

// ErrEmptyScenario is returned for a scenario without launches.
var ErrEmptyScenario = errors.New("config: scenario has no launches")

// LoadScenario reads a scenario from the YAML file at path.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read scenario: %w", err)
	}
	return ParseScenario(bytes.NewReader(data))
}

// ParseScenario decodes a scenario and resolves the parameters of every
// launch: launch fields override scenario defaults, which override the
// reference example values. Unnamed launches are named launch-<n>.
func ParseScenario(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScenario
		}
		return nil, fmt.Errorf("config: decode scenario: %w", err)
	}
	if len(s.Launches) == 0 {
		return nil, ErrEmptyScenario
	}

	defaults := s.Defaults.Merge(ballistic.DefaultLaunchParameters())
	for i := range s.Launches {
		l := &s.Launches[i]
		if l.Name == "" {
			l.Name = fmt.Sprintf("launch-%d", i+1)
		}
		l.Parameters = l.PartialParameters.Merge(defaults)
	}
	return &s, nil
}
