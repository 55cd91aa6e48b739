package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cedrichille/monopoly-companion-app/internal/adapter"
	"github.com/cedrichille/monopoly-companion-app/internal/logger"
	"github.com/cedrichille/monopoly-companion-app/internal/refdata"
)

var (
	srcDir = flag.String("src", "data/csv/", "Directory holding the CSV exports")
	dstDir = flag.String("dst", "data/", "Directory the JSON fixtures are written to")
	debug  = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	if err := logger.Initialize(logger.Config{Debug: *debug}); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(time.Second)

	ctx := context.Background()
	converter := refdata.NewConverter(adapter.NewFileSystem(), adapter.NewJSON())
	summary, err := converter.Convert(ctx, *srcDir, *dstDir)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to convert fixtures", zap.Error(err), zap.String("src", *srcDir))
	}

	logger.InfoCtx(ctx, "Done",
		zap.Int("action_types", summary.ActionTypes),
		zap.Int("game_versions", summary.GameVersions),
		zap.Int("players", summary.Players),
	)
}
