package drills

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/connective-drills/internal/data/repos/testutil"
	types "github.com/yungbote/connective-drills/internal/domain/drills"
	"github.com/yungbote/connective-drills/internal/pkg/dbctx"
)

func newChallenge(difficulty string, at time.Time) *types.Challenge {
	return &types.Challenge{
		Difficulty:        difficulty,
		Kind:              types.KindFreeformZH,
		Source:            types.SourceLocalBank,
		SeedZH:            "下雨了",
		ChallengeZH:       "用“因为…所以…”和“于是…”，只写两句。",
		ReferenceAnswerZH: "因为下雨了，所以我没去远处。我没去远处，于是我就在附近的小店慢慢逛",
		ChainID:           "zh_chain__cause_to_result__v1",
		Spec:              datatypes.JSON(`{"seed":"下雨了"}`),
		CreatedAt:         at,
		UpdatedAt:         at,
	}
}

func TestChallengeRepo_CreateGetList(t *testing.T) {
	db := testutil.DB(t)
	repo := NewChallengeRepo(db, testutil.Logger(t))
	dbc := dbctx.New(context.Background())

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	first, err := repo.Create(dbc, newChallenge("hsk3", base))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	second, err := repo.Create(dbc, newChallenge("hsk3", base.Add(time.Minute)))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(dbc, newChallenge("hsk1", base.Add(2*time.Minute))); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(dbc, first.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: %v %v", got, err)
	}
	if got.SeedZH != "下雨了" || string(got.Spec) != `{"seed":"下雨了"}` {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	missing, err := repo.GetByID(dbc, uuid.New())
	if err != nil || missing != nil {
		t.Fatalf("missing id should be (nil, nil), got %v %v", missing, err)
	}

	list, err := repo.ListByDifficulty(dbc, "hsk3", 10)
	if err != nil {
		t.Fatalf("ListByDifficulty: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("expected newest first, got %d rows", len(list))
	}

	all, err := repo.ListByDifficulty(dbc, "", 0)
	if err != nil || len(all) != 3 {
		t.Fatalf("list all: %d %v", len(all), err)
	}

	n, err := repo.CountByDifficulty(dbc, "hsk1")
	if err != nil || n != 1 {
		t.Fatalf("CountByDifficulty = %d, %v", n, err)
	}
}

func TestAttemptRepo_ListAndBest(t *testing.T) {
	db := testutil.DB(t)
	attempts := NewAttemptRepo(db, testutil.Logger(t))
	ctx := context.Background()
	dbc := dbctx.New(ctx)

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	ch := testutil.SeedChallenge(t, ctx, db, "hsk2", base)

	if _, ok, err := attempts.BestScore(dbc, ch.ID); err != nil || ok {
		t.Fatalf("no attempts yet: ok=%v err=%v", ok, err)
	}

	testutil.SeedAttempt(t, ctx, db, ch.ID, 50, base)
	testutil.SeedAttempt(t, ctx, db, ch.ID, 92, base.Add(time.Minute))
	if _, err := attempts.Create(dbc, &types.Attempt{
		ChallengeID: ch.ID,
		Answer:      "答案",
		Score:       75,
		Pass:        true,
		CreatedAt:   base.Add(2 * time.Minute),
	}); err != nil {
		t.Fatalf("Create attempt: %v", err)
	}

	list, err := attempts.ListByChallenge(dbc, ch.ID, 2)
	if err != nil {
		t.Fatalf("ListByChallenge: %v", err)
	}
	if len(list) != 2 || list[0].Score != 75 || list[1].Score != 92 {
		t.Fatalf("unexpected order: %+v", list)
	}

	best, ok, err := attempts.BestScore(dbc, ch.ID)
	if err != nil || !ok || best != 92 {
		t.Fatalf("BestScore = %v %v %v", best, ok, err)
	}

	if _, err := attempts.Create(dbc, &types.Attempt{Answer: "x"}); err == nil {
		t.Fatalf("expected error without challenge id")
	}
}

func TestChallengeRepo_TxRollback(t *testing.T) {
	db := testutil.DB(t)
	repo := NewChallengeRepo(db, testutil.Logger(t))

	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	ch, err := repo.Create(dbc, newChallenge("hsk4", time.Now()))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := tx.Rollback().Error; err != nil {
		t.Fatalf("rollback: %v", err)
	}

	got, err := repo.GetByID(dbctx.New(context.Background()), ch.ID)
	if err != nil || got != nil {
		t.Fatalf("row should not survive rollback: %v %v", got, err)
	}
}

func TestClampLimit(t *testing.T) {
	cases := map[int]int{-1: 20, 0: 20, 5: 5, 100: 100, 500: 100}
	for in, want := range cases {
		if got := clampLimit(in); got != want {
			t.Fatalf("clampLimit(%d) = %d, want %d", in, got, want)
		}
	}
}
