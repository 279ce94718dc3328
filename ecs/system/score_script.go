package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/digger/ecs/component"
	"github.com/milk9111/digger/prefabs"
)

// ScoreScript maps a collected pickup to the score it awards. The script reads
// the globals kind and points and leaves the result in value.
type ScoreScript struct {
	name     string
	compiled *tengo.Compiled
}

// LoadScoreScript compiles a script from the prefab scripts directory.
func LoadScoreScript(name string) (*ScoreScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("score script %q: %w", name, err)
	}
	s, err := NewScoreScript(src)
	if err != nil {
		return nil, fmt.Errorf("score script %q: %w", name, err)
	}
	s.name = name
	return s, nil
}

func NewScoreScript(src []byte) (*ScoreScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("kind", "")
	_ = script.Add("points", 0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &ScoreScript{compiled: compiled}, nil
}

func (s *ScoreScript) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Value runs the script for one pickup. A nil script awards points unchanged.
func (s *ScoreScript) Value(kind component.PickupKind, points int) (int, error) {
	if s == nil || s.compiled == nil {
		return points, nil
	}
	if err := s.compiled.Set("kind", string(kind)); err != nil {
		return 0, err
	}
	if err := s.compiled.Set("points", points); err != nil {
		return 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, err
	}
	if !s.compiled.IsDefined("value") {
		return points, nil
	}
	return s.compiled.Get("value").Int(), nil
}
