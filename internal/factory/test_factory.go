package factory

import (
	"log/slog"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/directory"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/testutil"
)

// NewTestApp creates an App with memory storage and a fixed directory,
// suitable for tests. Panics on error since misconfiguration here is a bug.
func NewTestApp(profiles []model.Profile, logger *slog.Logger) *App {
	if logger == nil {
		logger = testutil.NopLogger()
	}

	handles := make([]string, len(profiles))
	for i, p := range profiles {
		handles[i] = p.Nickname
	}

	app, err := New(Config{
		Handles:   handles,
		Directory: directory.NewStatic(profiles...),
		Logger:    logger,
	})
	if err != nil {
		panic(err)
	}
	return app
}
