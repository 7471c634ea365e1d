package preset

import (
	"context"
	"testing"

	"github.com/jordanlanch/touchpoint/ent"
	"github.com/jordanlanch/touchpoint/ent/enttest"
	"github.com/jordanlanch/touchpoint/pkg/domain"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func threeStepRequest() CreatePresetRequest {
	return CreatePresetRequest{
		Name:                 "New Lead Nurture",
		Description:          "Call, message, call again",
		DefaultCycleBehavior: "one_time",
		Steps: []StepRequest{
			{Method: "call", IntervalDays: 0},
			{Method: "whatsapp", IntervalDays: 3},
			{Method: "call", IntervalDays: 7},
		},
	}
}

func TestCreatePreset(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil)

	t.Run("Success - Create preset with steps", func(t *testing.T) {
		result, err := service.CreatePreset(ctx, 1, threeStepRequest())

		require.NoError(t, err)
		assert.Equal(t, "New Lead Nurture", result.Name)
		assert.Equal(t, "one_time", result.DefaultCycleBehavior)
		assert.True(t, result.IsActive)
		require.Len(t, result.Steps, 3)
		assert.Equal(t, 0, result.Steps[0].StepOrder)
		assert.Equal(t, "whatsapp", result.Steps[1].Method)
		assert.Equal(t, "entity_owner", result.Steps[0].AssigneeRule)
	})

	t.Run("Success - Behavior defaults to one_time", func(t *testing.T) {
		req := threeStepRequest()
		req.Name = "No Behavior Given"
		req.DefaultCycleBehavior = ""

		result, err := service.CreatePreset(ctx, 1, req)

		require.NoError(t, err)
		assert.Equal(t, "one_time", result.DefaultCycleBehavior)
	})

	t.Run("Error - Empty sequence", func(t *testing.T) {
		req := threeStepRequest()
		req.Steps = nil

		result, err := service.CreatePreset(ctx, 1, req)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, domain.IsEmptySequence(err))
	})

	t.Run("Error - Negative interval", func(t *testing.T) {
		req := threeStepRequest()
		req.Steps[1].IntervalDays = -2

		result, err := service.CreatePreset(ctx, 1, req)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, domain.IsInvalidInterval(err))
	})
}

func TestGetPreset(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil)

	created, err := service.CreatePreset(ctx, 1, threeStepRequest())
	require.NoError(t, err)

	t.Run("Success - Get preset", func(t *testing.T) {
		result, err := service.GetPreset(ctx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, result.ID)
		assert.Len(t, result.Steps, 3)
	})

	t.Run("Error - Preset not found", func(t *testing.T) {
		result, err := service.GetPreset(ctx, 99999)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestListPresets(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil)

	first, err := service.CreatePreset(ctx, 1, threeStepRequest())
	require.NoError(t, err)

	second := threeStepRequest()
	second.Name = "Customer Care"
	_, err = service.CreatePreset(ctx, 1, second)
	require.NoError(t, err)

	inactive := false
	_, err = service.UpdatePreset(ctx, 1, first.ID, UpdatePresetRequest{IsActive: &inactive})
	require.NoError(t, err)

	t.Run("Success - List all", func(t *testing.T) {
		presets, err := service.ListPresets(ctx, false)

		require.NoError(t, err)
		assert.Len(t, presets, 2)
	})

	t.Run("Success - Active only", func(t *testing.T) {
		presets, err := service.ListPresets(ctx, true)

		require.NoError(t, err)
		require.Len(t, presets, 1)
		assert.Equal(t, "Customer Care", presets[0].Name)
	})
}

func TestUpdatePreset(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil)

	created, err := service.CreatePreset(ctx, 1, threeStepRequest())
	require.NoError(t, err)

	t.Run("Success - Update name and behavior", func(t *testing.T) {
		newName := "Renamed"
		newBehavior := "auto_repeat"

		result, err := service.UpdatePreset(ctx, 1, created.ID, UpdatePresetRequest{
			Name:                 &newName,
			DefaultCycleBehavior: &newBehavior,
		})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", result.Name)
		assert.Equal(t, "auto_repeat", result.DefaultCycleBehavior)
		assert.Len(t, result.Steps, 3)
	})

	t.Run("Success - Replace steps", func(t *testing.T) {
		newSteps := []StepRequest{
			{Method: "visit", IntervalDays: 0, AssigneeRule: "field_staff"},
			{Method: "call", IntervalDays: 14},
		}

		result, err := service.UpdatePreset(ctx, 1, created.ID, UpdatePresetRequest{Steps: &newSteps})

		require.NoError(t, err)
		require.Len(t, result.Steps, 2)
		assert.Equal(t, "visit", result.Steps[0].Method)
		assert.Equal(t, "field_staff", result.Steps[0].AssigneeRule)
		assert.Equal(t, 1, result.Steps[1].StepOrder)
	})

	t.Run("Error - Replacing with empty steps", func(t *testing.T) {
		empty := []StepRequest{}

		result, err := service.UpdatePreset(ctx, 1, created.ID, UpdatePresetRequest{Steps: &empty})

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, domain.IsEmptySequence(err))
	})

	t.Run("Error - Preset not found", func(t *testing.T) {
		newName := "Ghost"

		result, err := service.UpdatePreset(ctx, 1, 99999, UpdatePresetRequest{Name: &newName})

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestDeletePreset(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil)

	t.Run("Success - Unreferenced preset is removed", func(t *testing.T) {
		created, err := service.CreatePreset(ctx, 1, threeStepRequest())
		require.NoError(t, err)

		err = service.DeletePreset(ctx, 1, created.ID)
		require.NoError(t, err)

		_, err = service.GetPreset(ctx, created.ID)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Success - Referenced preset is deactivated, snapshot untouched", func(t *testing.T) {
		created, err := service.CreatePreset(ctx, 1, threeStepRequest())
		require.NoError(t, err)

		template, err := service.Template(ctx, created.ID)
		require.NoError(t, err)

		// Reference the preset from a subscription carrying the snapshot.
		sub, err := client.Subscription.
			Create().
			SetEntityType("lead").
			SetEntityID(1).
			SetPresetID(created.ID).
			SetSteps(template).
			SetAssignedTo(1).
			Save(ctx)
		require.NoError(t, err)

		err = service.DeletePreset(ctx, 1, created.ID)
		require.NoError(t, err)

		got, err := service.GetPreset(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)

		// Snapshot still in place.
		stored, err := client.Subscription.Get(ctx, sub.ID)
		require.NoError(t, err)
		assert.Len(t, stored.Steps, 3)
	})

	t.Run("Error - Preset not found", func(t *testing.T) {
		err := service.DeletePreset(ctx, 1, 99999)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestTemplate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil)

	created, err := service.CreatePreset(ctx, 1, threeStepRequest())
	require.NoError(t, err)

	template, err := service.Template(ctx, created.ID)
	require.NoError(t, err)

	require.Len(t, template, 3)
	assert.Equal(t, domain.MethodCall, template[0].Method)
	assert.Equal(t, 3, template[1].IntervalDays)
	assert.Equal(t, domain.AssignEntityOwner, template[2].AssigneeRule)
}
