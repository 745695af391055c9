package factory

import (
	"time"

	"github.com/mathrace/mathrace-go/internal/dependencies/mocks"
	"github.com/mathrace/mathrace-go/internal/services/auth"
	"github.com/mathrace/mathrace-go/internal/storage/memory"
	"github.com/mathrace/mathrace-go/internal/testutil"
)

// TestApp is an App wired with in-memory storage and mock dependencies,
// for integration-style tests that need deterministic time and codes
type TestApp struct {
	*App

	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MemStorage *memory.Storage
}

// NewTestApp creates a fully wired test application
func NewTestApp() *TestApp {
	store := memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	rnd := mocks.NewMockRandom()

	app := newWithDependencies(store, clk, rnd, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  clk,
		MockRandom: rnd,
		MemStorage: store,
	}
}
