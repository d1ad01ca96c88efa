package connective

// Relation is the rhetorical link a pattern realizes between two clauses.
type Relation string

const (
	RelAddition  Relation = "ADDITION"
	RelChoice    Relation = "CHOICE"
	RelContrast  Relation = "CONTRAST"
	RelCause     Relation = "CAUSE"
	RelResult    Relation = "RESULT"
	RelCondition Relation = "CONDITION"
	RelTime      Relation = "TIME"
	RelPurpose   Relation = "PURPOSE"
)

// Kind is carried into the Spec unchanged. No sampling or validation rule reads it.
type Kind string

const (
	KindPair   Kind = "PAIR"
	KindSingle Kind = "SINGLE"
)

// PatternDef is one connective sentence form. Template holds {A} and {B}
// placeholders; Check is a restricted expression understood by Match.
type PatternDef struct {
	ID         string
	Relation   Relation
	Level      int
	Kind       Kind
	Template   string
	MarkersZH  string
	Strong     []string
	Weak       []string
	SeedBanned []string
	Check      string
}

type ChainDef struct {
	ID          string
	Step1       Relation
	Step2       Relation
	SceneSchema string
}

type SceneDef struct {
	ID     string
	Schema string
	P1     string
	P2     string
	P3     string
}

// PatternsFor returns the catalog entries for a relation, in catalog order.
func PatternsFor(rel Relation) []PatternDef {
	return patternsByRelation[rel]
}

// Patterns returns every catalog pattern. Callers must not modify the result.
func Patterns() []PatternDef { return patternCatalog }

func Chains() []ChainDef { return chainCatalog }

func Scenes() []SceneDef { return sceneCatalog }

// ScenesFor returns the scenes tagged with schema.
func ScenesFor(schema string) []SceneDef {
	return scenesBySchema[schema]
}

var (
	patternsByRelation = indexPatterns(patternCatalog)
	scenesBySchema     = indexScenes(sceneCatalog)
)

func indexPatterns(in []PatternDef) map[Relation][]PatternDef {
	out := make(map[Relation][]PatternDef, 8)
	for _, p := range in {
		out[p.Relation] = append(out[p.Relation], p)
	}
	return out
}

func indexScenes(in []SceneDef) map[string][]SceneDef {
	out := make(map[string][]SceneDef, 16)
	for _, s := range in {
		out[s.Schema] = append(out[s.Schema], s)
	}
	return out
}

func PatternByID(id string) (PatternDef, bool) {
	for _, p := range patternCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return PatternDef{}, false
}

func ChainByID(id string) (ChainDef, bool) {
	for _, c := range chainCatalog {
		if c.ID == id {
			return c, true
		}
	}
	return ChainDef{}, false
}

func SceneByID(id string) (SceneDef, bool) {
	for _, s := range sceneCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return SceneDef{}, false
}
