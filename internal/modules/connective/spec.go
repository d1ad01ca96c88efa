package connective

import (
	"encoding/json"
	"strings"
)

const (
	Version  = "core_plus_core.zh.v2"
	Language = "zh"
	Mode     = "core_plus_core"
)

// Spec is the fully resolved bundle sampled for one challenge. Its JSON form
// is sent verbatim to the item generator, so field names are part of the
// wire contract.
type Spec struct {
	Version            string `json:"version"`
	Language           string `json:"language"`
	Mode               string `json:"mode"`
	ChainID            string `json:"chain_id"`
	ChainStep1Relation string `json:"chain_step1_relation"`
	ChainStep2Relation string `json:"chain_step2_relation"`
	SceneID            string `json:"scene_id"`
	SceneSchema        string `json:"scene_schema"`
	Step1              Step   `json:"step1"`
	Step2              Step   `json:"step2"`
	Seed               string `json:"seed"`
	Props              Props  `json:"props"`
}

// Step is a snapshot of the PatternDef chosen for one chain step.
type Step struct {
	Relation      string   `json:"relation"`
	PatternID     string   `json:"pattern_id"`
	PatternTpl    string   `json:"pattern_tpl"`
	MarkersZH     string   `json:"markers_zh"`
	Kind          string   `json:"kind"`
	Level         int      `json:"level"`
	CheckRegex    string   `json:"check_regex"`
	StrongMarkers []string `json:"strong_markers"`
	WeakMarkers   []string `json:"weak_markers"`
}

type Props struct {
	P1 string `json:"P1"`
	P2 string `json:"P2"`
	P3 string `json:"P3"`
}

// GeneratedItem is a candidate produced outside this package. It must pass
// ValidateGeneratedItem before it is shown to a learner.
type GeneratedItem struct {
	SeedZH            string          `json:"seed_zh"`
	ChallengeZH       string          `json:"challenge_zh"`
	ReferenceAnswerZH string          `json:"reference_answer_zh"`
	Meta              json.RawMessage `json:"meta,omitempty"`
}

func newStep(rel Relation, p PatternDef) Step {
	return Step{
		Relation:      string(rel),
		PatternID:     p.ID,
		PatternTpl:    p.Template,
		MarkersZH:     p.MarkersZH,
		Kind:          string(p.Kind),
		Level:         p.Level,
		CheckRegex:    p.Check,
		StrongMarkers: cloneStrings(p.Strong),
		WeakMarkers:   cloneStrings(p.Weak),
	}
}

// cloneStrings never returns nil so empty marker lists encode as [].
func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// ParseSpec decodes a Spec from its JSON wire form.
func ParseSpec(raw []byte) (Spec, error) {
	var s Spec
	if err := json.Unmarshal(raw, &s); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// Labels returns the two marker labels, step1 first.
func (s Spec) Labels() (string, string) {
	return strings.TrimSpace(s.Step1.MarkersZH), strings.TrimSpace(s.Step2.MarkersZH)
}

// NewSpec denormalizes a chosen combination. It performs no compatibility
// checks; Sample is responsible for those.
func NewSpec(chain ChainDef, step1, step2 PatternDef, scene SceneDef) Spec {
	return Spec{
		Version:            Version,
		Language:           Language,
		Mode:               Mode,
		ChainID:            chain.ID,
		ChainStep1Relation: string(chain.Step1),
		ChainStep2Relation: string(chain.Step2),
		SceneID:            scene.ID,
		SceneSchema:        scene.Schema,
		Step1:              newStep(chain.Step1, step1),
		Step2:              newStep(chain.Step2, step2),
		Seed:               scene.P1,
		Props:              Props{P1: scene.P1, P2: scene.P2, P3: scene.P3},
	}
}
