package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelplanner/internal/ai"
	"travelplanner/internal/ai/aitest"
	"travelplanner/internal/modules/assistant"
	"travelplanner/internal/modules/itinerary"
	"travelplanner/internal/modules/pricing"
	"travelplanner/internal/service"
)

func stubFactory(stub *aitest.Stub) appFactory {
	return func(context.Context) (*app, error) {
		return &app{
			planner:   service.NewTripPlanner(itinerary.NewService(stub, itinerary.DefaultStyle), zap.NewNop()),
			assistant: assistant.NewService(stub),
			timeout:   time.Second,
		}, nil
	}
}

func execute(t *testing.T, factory appFactory, args ...string) (string, error) {
	t.Helper()
	root := newRootCmdWith(factory)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestEstimateCmd(t *testing.T) {
	out, err := execute(t, stubFactory(&aitest.Stub{}), "estimate", "--days", "5", "--budget", "mid-range")
	require.NoError(t, err)
	assert.Contains(t, out, "$800")

	_, err = execute(t, stubFactory(&aitest.Stub{}), "estimate", "--days", "0")
	assert.ErrorIs(t, err, pricing.ErrInvalidDays)

	_, err = execute(t, stubFactory(&aitest.Stub{}), "estimate", "--budget", "Premium")
	assert.ErrorIs(t, err, pricing.ErrInvalidTier)
}

func TestTiersCmd(t *testing.T) {
	out, err := execute(t, stubFactory(&aitest.Stub{}), "tiers")
	require.NoError(t, err)
	assert.Contains(t, out, "Luxury")
	assert.Contains(t, out, "$400")
}

func TestPlanCmd(t *testing.T) {
	stub := &aitest.Stub{Reply: "Day 1: Louvre"}
	out, err := execute(t, stubFactory(stub), "plan", "--city", "Paris", "--interests", "Museums, Food", "--days", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Paris")
	assert.Contains(t, out, "$800")
	assert.Contains(t, out, "Day 1: Louvre")
	assert.Equal(t, 1, stub.Calls())
}

func TestPlanCmd_Errors(t *testing.T) {
	stub := &aitest.Stub{Reply: "unused"}
	_, err := execute(t, stubFactory(stub), "plan", "--city", "Paris", "--days", "20")
	assert.ErrorIs(t, err, itinerary.ErrValidation)
	assert.Zero(t, stub.Calls())

	failing := &aitest.Stub{Err: fmt.Errorf("%w: down", ai.ErrProvider)}
	_, err = execute(t, stubFactory(failing), "plan", "--city", "Paris")
	assert.ErrorIs(t, err, ai.ErrProvider)

	_, err = execute(t, stubFactory(stub), "plan")
	assert.Error(t, err, "city flag is required")
}

func TestAskCmd(t *testing.T) {
	stub := &aitest.Stub{Reply: "Cherry blossom season."}
	out, err := execute(t, stubFactory(stub), "ask", "When", "to", "visit", "Kyoto?")
	require.NoError(t, err)
	assert.Contains(t, out, "Cherry blossom season.")

	prompts := stub.Prompts()
	require.Len(t, prompts, 1)
	assert.Equal(t, "When to visit Kyoto?", prompts[0].Messages[0].Content)
}

func TestAppFactoryError(t *testing.T) {
	boom := errors.New("no credential")
	_, err := execute(t, func(context.Context) (*app, error) { return nil, boom }, "ask", "hi")
	assert.ErrorIs(t, err, boom)
}

func TestErrorsAreRenderedOnce(t *testing.T) {
	out, err := execute(t, stubFactory(&aitest.Stub{}), "estimate", "--budget", "Premium")
	require.Error(t, err)
	assert.NotContains(t, out, "Error:", "cobra must not print the error itself")

	var stderr bytes.Buffer
	reportError(&stderr, err)
	assert.Contains(t, stderr.String(), "✗")
	assert.Contains(t, stderr.String(), "invalid budget tier")
}
