package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"postdeck/internal/models"
)

func post(id string) *models.Post {
	return &models.Post{ID: id, Status: models.PostStatusScheduled}
}

func TestListReplacesCollectionInServerOrder(t *testing.T) {
	s := NewPostStore()

	seq := s.Begin()
	s.ApplyCreate(seq, post("stale"))

	incoming := []*models.Post{post("a"), post("b"), post("c")}
	seq = s.Begin()
	s.ApplyList(seq, incoming)

	got := s.Posts()
	require.Len(t, got, 3)
	for i, p := range incoming {
		require.Equal(t, p.ID, got[i].ID)
	}
}

func TestCreateAppendsWithoutDeduplication(t *testing.T) {
	s := NewPostStore()
	created := post("dup")

	// Applying the same create success twice appends twice. That is the
	// documented container behavior, not a bug to paper over here.
	s.ApplyCreate(s.Begin(), created)
	s.ApplyCreate(s.Begin(), created)

	got := s.Posts()
	require.Len(t, got, 2)
	require.Equal(t, "dup", got[0].ID)
	require.Equal(t, "dup", got[1].ID)
}

func TestStatusPassesThroughPending(t *testing.T) {
	s := NewPostStore()
	require.Equal(t, StatusIdle, s.Status())

	seq := s.Begin()
	require.Equal(t, StatusPending, s.Status())

	s.ApplyList(seq, nil)
	require.Equal(t, StatusSucceeded, s.Status())

	seq = s.Begin()
	require.Equal(t, StatusPending, s.Status())
	require.NoError(t, s.LastError())

	boom := errors.New("boom")
	s.Fail(seq, boom)
	require.Equal(t, StatusFailed, s.Status())
	require.ErrorIs(t, s.LastError(), boom)
}

func TestLastSettledRequestWins(t *testing.T) {
	s := NewPostStore()

	// Two in-flight list requests: dispatch order first, second; settle
	// order second, first. The first request settles last, so its response
	// determines final state even though it was dispatched earlier.
	seqFirst := s.Begin()
	seqSecond := s.Begin()

	s.ApplyList(seqSecond, []*models.Post{post("from-second")})
	s.ApplyList(seqFirst, []*models.Post{post("from-first")})

	got := s.Posts()
	require.Len(t, got, 1)
	require.Equal(t, "from-first", got[0].ID)
	require.Equal(t, seqFirst, s.SettledSeq())
}

func TestFilterAndCountByStatus(t *testing.T) {
	s := NewPostStore()
	s.ApplyList(s.Begin(), []*models.Post{
		{ID: "1", Status: models.PostStatusScheduled},
		{ID: "2", Status: models.PostStatusPosted},
		{ID: "3", Status: models.PostStatusScheduled},
		{ID: "4", Status: models.PostStatusFailed},
	})

	scheduled := s.FilterByStatus(models.PostStatusScheduled)
	require.Len(t, scheduled, 2)
	require.Equal(t, "1", scheduled[0].ID)
	require.Equal(t, "3", scheduled[1].ID)

	counts := s.CountByStatus()
	require.Equal(t, 2, counts[models.PostStatusScheduled])
	require.Equal(t, 1, counts[models.PostStatusPosted])
	require.Equal(t, 1, counts[models.PostStatusFailed])
}
