package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelens/venturelens/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testReport(id string, created time.Time) *model.Report {
	return &model.Report{
		ID:        id,
		Idea:      "robot barista",
		CreatedAt: created,
		Viability: model.Viability{Score: 7, RiskAssessment: model.RiskMedium},
		Degraded: []model.DegradedStage{
			{Stage: model.StageSocialTrends, Reason: "no social credentials"},
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	r := testReport("r1", time.Now().UTC().Truncate(time.Second))

	require.NoError(t, s.Save(r))

	got, err := s.Get("r1")
	require.NoError(t, err)
	assert.Equal(t, r.Idea, got.Idea)
	assert.Equal(t, r.Viability, got.Viability)
	assert.Equal(t, r.Degraded, got.Degraded)
}

func TestGetMissingReport(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveReplacesExisting(t *testing.T) {
	s := openTestStore(t)
	r := testReport("r1", time.Now().UTC())
	require.NoError(t, s.Save(r))

	r.Viability.Score = 9
	require.NoError(t, s.Save(r))

	got, err := s.Get("r1")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Viability.Score)

	list, err := s.List(10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		r := testReport(fmt.Sprintf("r%d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, s.Save(r))
	}

	list, err := s.List(3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "r4", list[0].ID)
	assert.Equal(t, "r3", list[1].ID)
	assert.Equal(t, "r2", list[2].ID)
	assert.Equal(t, 7, list[0].ViabilityScore)
	assert.Equal(t, 1, list[0].DegradedStages)
}
