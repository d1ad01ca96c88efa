package challenges

import (
	"context"

	"github.com/yungbote/connective-drills/internal/pkg/dbctx"
)

func dbctxFor(ctx context.Context) dbctx.Context { return dbctx.Context{Ctx: ctx} }
