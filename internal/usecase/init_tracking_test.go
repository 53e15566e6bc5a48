package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

const trackingPath = "/project/.treb/tracking.toml"

func TestInitTracking(t *testing.T) {
	ctx := context.Background()

	newTracker := func(exists bool) *MockDeploymentTracker {
		tracker := new(MockDeploymentTracker)
		tracker.On("Path").Return(trackingPath)
		tracker.On("Exists").Return(exists)
		return tracker
	}

	t.Run("creates a new database", func(t *testing.T) {
		tracker := newTracker(false)
		tracker.On("Create", mock.Anything).Return(nil)

		uc := usecase.NewInitTracking(&config.RuntimeConfig{}, tracker, new(MockConfirmer))
		result, err := uc.Run(ctx, usecase.InitTrackingParams{})
		require.NoError(t, err)

		assert.True(t, result.Created)
		assert.False(t, result.AlreadyExists)
		assert.Equal(t, trackingPath, result.Path)
	})

	t.Run("leaves an empty database alone", func(t *testing.T) {
		tracker := newTracker(true)
		tracker.On("IsEmpty", mock.Anything).Return(true, nil)

		uc := usecase.NewInitTracking(&config.RuntimeConfig{}, tracker, new(MockConfirmer))
		result, err := uc.Run(ctx, usecase.InitTrackingParams{})
		require.NoError(t, err)

		assert.True(t, result.AlreadyExists)
		assert.False(t, result.Created)
		tracker.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("force resets a populated database", func(t *testing.T) {
		tracker := newTracker(true)
		tracker.On("IsEmpty", mock.Anything).Return(false, nil)
		tracker.On("Create", mock.Anything).Return(nil)
		confirmer := new(MockConfirmer)

		uc := usecase.NewInitTracking(&config.RuntimeConfig{}, tracker, confirmer)
		result, err := uc.Run(ctx, usecase.InitTrackingParams{Force: true})
		require.NoError(t, err)

		assert.True(t, result.Reset)
		assert.True(t, result.Created)
		confirmer.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
	})

	t.Run("non-interactive refuses to reset", func(t *testing.T) {
		tracker := newTracker(true)
		tracker.On("IsEmpty", mock.Anything).Return(false, nil)

		uc := usecase.NewInitTracking(&config.RuntimeConfig{NonInteractive: true}, tracker, new(MockConfirmer))
		_, err := uc.Run(ctx, usecase.InitTrackingParams{})
		assert.ErrorContains(t, err, "--force")
		tracker.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("declined confirmation keeps the database", func(t *testing.T) {
		tracker := newTracker(true)
		tracker.On("IsEmpty", mock.Anything).Return(false, nil)
		confirmer := new(MockConfirmer)
		confirmer.On("Confirm", mock.Anything, mock.Anything).Return(false, nil)

		uc := usecase.NewInitTracking(&config.RuntimeConfig{}, tracker, confirmer)
		result, err := uc.Run(ctx, usecase.InitTrackingParams{})
		require.NoError(t, err)

		assert.False(t, result.Created)
		assert.False(t, result.Reset)
		tracker.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("confirmed reset of an unreadable database", func(t *testing.T) {
		tracker := newTracker(true)
		tracker.On("IsEmpty", mock.Anything).Return(false, errors.New("malformed document"))
		tracker.On("Create", mock.Anything).Return(nil)
		confirmer := new(MockConfirmer)
		confirmer.On("Confirm", mock.Anything, mock.Anything).Return(true, nil)

		uc := usecase.NewInitTracking(&config.RuntimeConfig{}, tracker, confirmer)
		result, err := uc.Run(ctx, usecase.InitTrackingParams{})
		require.NoError(t, err)

		assert.True(t, result.Reset)
		assert.True(t, result.Created)
	})
}
