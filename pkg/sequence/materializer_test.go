package sequence

import (
	"context"
	"testing"
	"time"

	"github.com/jordanlanch/touchpoint/pkg/domain"
	"github.com/jordanlanch/touchpoint/pkg/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMaterializer() *Materializer {
	dir := identity.NewStaticDirectory(1, []int{20, 21})
	dir.SetOwner(identity.EntityRef{Type: "lead", ID: 5}, 42)
	return NewMaterializer(dir)
}

func TestMaterialize_OffsetsAccumulate(t *testing.T) {
	m := testMaterializer()
	// Monday
	anchor := time.Date(2025, 3, 3, 15, 30, 0, 0, time.UTC)

	steps := []domain.TemplateStep{
		{Method: domain.MethodCall, IntervalDays: 0, AssigneeRule: domain.AssignEntityOwner},
		{Method: domain.MethodWhatsapp, IntervalDays: 3, AssigneeRule: domain.AssignEntityOwner},
		{Method: domain.MethodCall, IntervalDays: 7, AssigneeRule: domain.AssignEntityOwner},
	}

	drafts, err := m.Materialize(context.Background(), steps, anchor, identity.EntityRef{Type: "lead", ID: 5}, false)
	require.NoError(t, err)
	require.Len(t, drafts, 3)

	// Absolute offsets are running sums: 0, 3, 10
	day0 := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, day0, drafts[0].ScheduledDate)
	assert.Equal(t, day0.AddDate(0, 0, 3), drafts[1].ScheduledDate)
	assert.Equal(t, day0.AddDate(0, 0, 10), drafts[2].ScheduledDate)

	// Indexes are contiguous from zero
	for i, d := range drafts {
		assert.Equal(t, i, d.SequenceIndex)
	}

	// Owner of lead 5 is user 42
	for _, d := range drafts {
		assert.Equal(t, 42, d.AssignedTo)
	}
}

func TestMaterialize_SkipWeekends(t *testing.T) {
	m := testMaterializer()
	// Friday
	anchor := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)

	steps := []domain.TemplateStep{
		{Method: domain.MethodCall, IntervalDays: 1, AssigneeRule: domain.AssignEntityOwner},  // Saturday
		{Method: domain.MethodVisit, IntervalDays: 1, AssigneeRule: domain.AssignEntityOwner}, // Sunday
	}

	t.Run("Success - rest day moves to Monday", func(t *testing.T) {
		drafts, err := m.Materialize(context.Background(), steps, anchor, identity.EntityRef{Type: "lead", ID: 5}, true)
		require.NoError(t, err)

		// Saturday is a working day; only Sunday shifts
		assert.Equal(t, time.Saturday, drafts[0].ScheduledDate.Weekday())
		assert.Equal(t, time.Monday, drafts[1].ScheduledDate.Weekday())
		assert.Equal(t, anchor.AddDate(0, 0, 3), drafts[1].ScheduledDate)
	})

	t.Run("Success - disabled leaves Sunday in place", func(t *testing.T) {
		drafts, err := m.Materialize(context.Background(), steps, anchor, identity.EntityRef{Type: "lead", ID: 5}, false)
		require.NoError(t, err)
		assert.Equal(t, time.Sunday, drafts[1].ScheduledDate.Weekday())
	})

	t.Run("Success - never produces a rest-day date", func(t *testing.T) {
		var steps []domain.TemplateStep
		for i := 0; i < 14; i++ {
			steps = append(steps, domain.TemplateStep{
				Method:       domain.MethodCall,
				IntervalDays: 1,
				AssigneeRule: domain.AssignEntityOwner,
			})
		}

		drafts, err := m.Materialize(context.Background(), steps, anchor, identity.EntityRef{Type: "lead", ID: 5}, true)
		require.NoError(t, err)
		for _, d := range drafts {
			assert.NotEqual(t, RestDay, d.ScheduledDate.Weekday())
		}
	})
}

func TestMaterialize_AssigneeRules(t *testing.T) {
	m := testMaterializer()
	anchor := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	steps := []domain.TemplateStep{
		{Method: domain.MethodCall, IntervalDays: 0, AssigneeRule: domain.AssignSpecificUser, AssigneeID: 7},
		{Method: domain.MethodVisit, IntervalDays: 1, AssigneeRule: domain.AssignFieldStaff},
		{Method: domain.MethodVisit, IntervalDays: 1, AssigneeRule: domain.AssignFieldStaff},
	}

	drafts, err := m.Materialize(context.Background(), steps, anchor, identity.EntityRef{Type: "lead", ID: 5}, false)
	require.NoError(t, err)

	assert.Equal(t, 7, drafts[0].AssignedTo)
	assert.Equal(t, 20, drafts[1].AssignedTo)
	assert.Equal(t, 21, drafts[2].AssignedTo)
}

func TestMaterialize_EmptyTemplate(t *testing.T) {
	m := testMaterializer()

	_, err := m.Materialize(context.Background(), nil, time.Now(), identity.EntityRef{}, false)
	require.Error(t, err)
	assert.True(t, domain.IsEmptySequence(err))
}

func TestMaterialize_ResolverFailure(t *testing.T) {
	m := NewMaterializer(identity.NewStaticDirectory(0, nil))

	steps := []domain.TemplateStep{
		{Method: domain.MethodCall, IntervalDays: 0, AssigneeRule: domain.AssignSpecificUser},
	}

	_, err := m.Materialize(context.Background(), steps, time.Now(), identity.EntityRef{}, false)
	assert.Error(t, err)
}
