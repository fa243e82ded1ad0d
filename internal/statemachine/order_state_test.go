package statemachine_test

import (
	"testing"

	"sbfoods/internal/models"
	"sbfoods/internal/statemachine"

	"github.com/stretchr/testify/assert"
)

var forwardChain = []string{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusDelivered,
}

func TestCanTransition_ForwardStepsAllowed(t *testing.T) {
	for i := 0; i < len(forwardChain)-1; i++ {
		assert.NoError(t, statemachine.CanTransition(forwardChain[i], forwardChain[i+1]),
			"%s -> %s should be allowed", forwardChain[i], forwardChain[i+1])
	}
}

func TestCanTransition_RejectsEverythingElse(t *testing.T) {
	for i, from := range forwardChain {
		for j, to := range forwardChain {
			if j == i+1 {
				continue
			}
			assert.Error(t, statemachine.CanTransition(from, to),
				"%s -> %s should be rejected", from, to)
		}
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	assert.Error(t, statemachine.CanTransition(models.StatusPending, "cancelled"))
	assert.Error(t, statemachine.CanTransition(models.StatusPending, ""))
	assert.Error(t, statemachine.CanTransition("bogus", models.StatusConfirmed))
}

func TestIsStatus(t *testing.T) {
	for _, s := range forwardChain {
		assert.True(t, statemachine.IsStatus(s))
	}
	assert.False(t, statemachine.IsStatus("cancelled"))
	assert.False(t, statemachine.IsStatus(""))
}

func TestNextStatus(t *testing.T) {
	assert.Equal(t, models.StatusConfirmed, statemachine.NextStatus(models.StatusPending))
	assert.Equal(t, "", statemachine.NextStatus(models.StatusDelivered))
	assert.Equal(t, "", statemachine.NextStatus("bogus"))
}
