package export

import (
	"context"
	"encoding/csv"
	"os"
	"testing"
	"time"

	"github.com/jordanlanch/touchpoint/ent"
	"github.com/jordanlanch/touchpoint/ent/enttest"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/pkg/domain"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTouches(t *testing.T, client *ent.Client) int {
	t.Helper()
	ctx := context.Background()

	sub, err := client.Subscription.
		Create().
		SetEntityType("lead").
		SetEntityID(1).
		SetEntityName("Acme Bakery").
		SetSteps([]domain.TemplateStep{{Method: domain.MethodCall, AssigneeRule: domain.AssignEntityOwner}}).
		SetAssignedTo(1).
		Save(ctx)
	require.NoError(t, err)

	base := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	for i := 0; i < 3; i++ {
		create := client.Touch.
			Create().
			SetSubscriptionID(sub.ID).
			SetCycle(1).
			SetSequenceIndex(i).
			SetMethod("call").
			SetScheduledDate(base.AddDate(0, 0, i*3)).
			SetAssignedTo(1)
		if i == 0 {
			create = create.
				SetStatus(touch.StatusCompleted).
				SetOutcome("reached").
				SetResolvedAt(now)
		}
		_, err := create.Save(ctx)
		require.NoError(t, err)
	}
	return sub.ID
}

func TestCreateExport(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	defer client.Close()

	subID := seedTouches(t, client)
	service := NewService(client, nil, t.TempDir())
	ctx := context.Background()

	t.Run("Success - CSV contains header and rows", func(t *testing.T) {
		result, err := service.CreateExport(ctx, 1, Request{
			Format:         "csv",
			SubscriptionID: subID,
		})

		require.NoError(t, err)
		assert.Equal(t, 3, result.Rows)

		file, err := os.Open(result.FilePath)
		require.NoError(t, err)
		defer file.Close()

		records, err := csv.NewReader(file).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 4)
		assert.Equal(t, "Entity", records[0][2])
		assert.Equal(t, "Acme Bakery", records[1][2])
		assert.Equal(t, "Completed", records[1][10])
		assert.Equal(t, "reached", records[1][11])
	})

	t.Run("Success - Status filter", func(t *testing.T) {
		result, err := service.CreateExport(ctx, 1, Request{
			Format: "csv",
			Status: "pending",
		})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Rows)
	})

	t.Run("Success - Excel file is written", func(t *testing.T) {
		result, err := service.CreateExport(ctx, 1, Request{Format: "excel"})

		require.NoError(t, err)
		assert.Equal(t, 3, result.Rows)

		info, err := os.Stat(result.FilePath)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})

	t.Run("Error - Unknown format", func(t *testing.T) {
		_, err := service.CreateExport(ctx, 1, Request{Format: "pdf"})

		assert.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}
