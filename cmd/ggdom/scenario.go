package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggdom/edit"
)

// Scenario is a sequence of frames applied to one document.
type Scenario struct {
	Viewport struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"viewport"`
	Scale  float32         `yaml:"scale,omitempty"`
	Strict bool            `yaml:"strict,omitempty"`
	Frames []ScenarioFrame `yaml:"frames"`
}

// ScenarioFrame is the edit stream of one frame.
type ScenarioFrame struct {
	Name      string          `yaml:"name,omitempty"`
	Mutations []edit.Mutation `yaml:"mutations"`
}

func loadScenario(fname string) (*Scenario, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("unable to read scenario: %w", err)
	}
	return parseScenario(data)
}

func parseScenario(data []byte) (*Scenario, error) {
	// Typos in a scenario should not be silently ignored
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	sc := &Scenario{}
	if err := dec.Decode(sc); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if sc.Viewport.Width <= 0 || sc.Viewport.Height <= 0 {
		return nil, fmt.Errorf("scenario viewport must be positive, got %vx%v", sc.Viewport.Width, sc.Viewport.Height)
	}
	return sc, nil
}
