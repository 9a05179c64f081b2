package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/db"
)

func TestResetPeriod_ClearsEveryRecord(t *testing.T) {
	approved := pendingRecord("rec-1", "Ankit Dixit", "ankit@uchicago.edu", "Monday", "3:45 PM – 8:00 PM", 2)
	approved.Approved = true
	store := &mockStore{records: []db.Assignment{
		approved,
		pendingRecord("rec-2", "Maya Patel", "maya@uchicago.edu", "Friday", "8:30 PM – 1:15 AM", 2),
	}}

	result, err := ResetPeriod(context.Background(), store, zap.NewNop(), testConfig())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.NextPeriodStart, "no period rule configured")

	assert.Empty(t, store.records)
	assert.Equal(t, 1, store.truncateCalls)
}

func TestResetPeriod_SubmissionsWorkImmediatelyAfter(t *testing.T) {
	store := &mockStore{records: []db.Assignment{
		pendingRecord("rec-1", "Maya Patel", "maya@uchicago.edu", "Friday", "8:30 PM – 1:15 AM", 2),
	}}
	ctx := context.Background()
	logger := zap.NewNop()
	cfg := testConfig()

	_, err := ResetPeriod(ctx, store, logger, cfg)
	require.NoError(t, err)

	cal, err := ListCalendar(ctx, store, logger, cfg, false)
	require.NoError(t, err)
	assert.Nil(t, cal, "fresh period has no schedule")

	result, err := SubmitAvailability(ctx, store, logger, cfg, validSubmission())
	require.NoError(t, err)
	assert.Len(t, result.Created, 2)
}

func TestResetPeriod_NextPeriodStartFromRule(t *testing.T) {
	store := &mockStore{}
	cfg := testConfig()
	cfg.PeriodRule = "FREQ=WEEKLY;BYDAY=MO"

	result, err := ResetPeriod(context.Background(), store, zap.NewNop(), cfg)
	require.NoError(t, err)

	require.NotNil(t, result.NextPeriodStart)
	assert.True(t, result.NextPeriodStart.After(time.Now()))
	assert.Equal(t, time.Monday, result.NextPeriodStart.Weekday())
}

func TestResetPeriod_StoreFailure(t *testing.T) {
	store := &mockStore{truncateErr: assert.AnError}

	_, err := ResetPeriod(context.Background(), store, zap.NewNop(), testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reset period")
}
