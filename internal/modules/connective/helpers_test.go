package connective

import "testing"

func mustSpec(t *testing.T, chainID, step1ID, step2ID, sceneID string) Spec {
	t.Helper()
	chain, ok := ChainByID(chainID)
	if !ok {
		t.Fatalf("unknown chain %q", chainID)
	}
	p1, ok := PatternByID(step1ID)
	if !ok {
		t.Fatalf("unknown pattern %q", step1ID)
	}
	p2, ok := PatternByID(step2ID)
	if !ok {
		t.Fatalf("unknown pattern %q", step2ID)
	}
	scene, ok := SceneByID(sceneID)
	if !ok {
		t.Fatalf("unknown scene %q", sceneID)
	}
	return NewSpec(chain, p1, p2, scene)
}

// rainSpec: 因为…所以… then 于是… over the travel_rain scene.
func rainSpec(t *testing.T) Spec {
	return mustSpec(t,
		"zh_chain__cause_to_result__v1",
		"zh_pat__cause__yinwei_suoyi__pair__l1",
		"zh_pat__result__yushi__single__l1",
		"zh_scene__travel_rain__v1",
	)
}

const rainReference = "因为下雨了，所以我没去远处。我没去远处，于是我就在附近的小店慢慢逛"
