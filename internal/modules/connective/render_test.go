package connective

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildExpectedReferenceAnswer(t *testing.T) {
	t.Parallel()

	spec := rainSpec(t)
	got := BuildExpectedReferenceAnswer(spec)
	if got != rainReference {
		t.Fatalf("reference = %q, want %q", got, rainReference)
	}
	if again := BuildExpectedReferenceAnswer(spec); again != got {
		t.Fatalf("reference not stable: %q vs %q", got, again)
	}
}

func TestBuildExpectedReferenceAnswer_StripsTemplatePunctuation(t *testing.T) {
	t.Parallel()

	spec := rainSpec(t)
	spec.Step1.PatternTpl = "因为{A}，所以{B}！！"
	spec.Step2.PatternTpl = " {A}，于是{B}。 "
	if got := BuildExpectedReferenceAnswer(spec); got != rainReference {
		t.Fatalf("reference = %q, want %q", got, rainReference)
	}
}

func TestBuildCompactChallengeZH(t *testing.T) {
	t.Parallel()

	want := "用“因为…所以…”和“于是…”，只写两句。"
	if got := BuildCompactChallengeZH(rainSpec(t)); got != want {
		t.Fatalf("challenge = %q, want %q", got, want)
	}
}

func TestSplitTwoSentences(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		ok     bool
		s1, s2 string
	}{
		{"甲。乙", true, "甲", "乙"},
		{" 甲。 乙。 ", true, "甲", "乙"},
		{"甲！乙？", true, "甲", "乙"},
		{"甲?乙!", true, "甲", "乙"},
		{"甲。。乙", true, "甲", "乙"},
		{"甲", false, "", ""},
		{"甲。乙。丙", false, "", ""},
		{"", false, "", ""},
		{"。。。", false, "", ""},
	}
	for _, tc := range cases {
		s1, s2, ok := SplitTwoSentences(tc.in)
		if ok != tc.ok || s1 != tc.s1 || s2 != tc.s2 {
			t.Fatalf("SplitTwoSentences(%q) = (%q, %q, %v), want (%q, %q, %v)", tc.in, s1, s2, ok, tc.s1, tc.s2, tc.ok)
		}
	}
}

func TestBuildUserMessage_UsesWireFieldNames(t *testing.T) {
	t.Parallel()

	msg, err := BuildUserMessage(rainSpec(t))
	if err != nil {
		t.Fatalf("BuildUserMessage: %v", err)
	}
	body, ok := strings.CutPrefix(msg, "SPEC_JSON:\n")
	if !ok {
		t.Fatalf("missing SPEC_JSON prefix: %q", msg)
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(body), &obj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{
		"version", "language", "mode", "chain_id", "chain_step1_relation", "chain_step2_relation",
		"scene_id", "scene_schema", "step1", "step2", "seed", "props",
	} {
		if _, ok := obj[key]; !ok {
			t.Fatalf("missing key %q in %s", key, body)
		}
	}
	props, _ := obj["props"].(map[string]any)
	if props["P1"] != "下雨了" {
		t.Fatalf("props.P1 = %v", props["P1"])
	}
	step1, _ := obj["step1"].(map[string]any)
	if step1["check_regex"] != "^因为.+，所以.+$" || step1["kind"] != "PAIR" {
		t.Fatalf("unexpected step1: %v", step1)
	}
}

func TestConnectorLabels(t *testing.T) {
	t.Parallel()

	if got := ConnectorEnglish("因为…所以…"); got != "because…therefore…" {
		t.Fatalf("ConnectorEnglish = %q", got)
	}
	if got := ConnectorEnglish("不存在…"); got != "connector" {
		t.Fatalf("unknown label = %q", got)
	}
	spec := rainSpec(t)
	want := `Use "因为…所以… (because…therefore…)" and "于是… (then…)". Write exactly two sentences.`
	if got := BuildChallengeEN(spec); got != want {
		t.Fatalf("BuildChallengeEN = %q", got)
	}
	if got := BuildSummaryEN(spec); got != "Connectors: 因为…所以… (because…therefore…) + 于是… (then…)" {
		t.Fatalf("BuildSummaryEN = %q", got)
	}
}

func TestConnectorEnglish_CoversCatalog(t *testing.T) {
	t.Parallel()

	for _, p := range Patterns() {
		if got := ConnectorEnglish(p.MarkersZH); got == "connector" {
			t.Errorf("no English gloss for %s (%s)", p.MarkersZH, p.ID)
		}
	}
}

func TestConnectorLabel_TailForm(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"不过…":   "不过… (however…)",
		"或者…":   "或者… (...or…)",
		"为…起见…": "为…起见… (for the sake of…)",
	}
	for in, want := range cases {
		if got := ConnectorLabel(in); got != want {
			t.Fatalf("ConnectorLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
