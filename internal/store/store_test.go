package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petjobs-engine/internal/domain"
)

func validDraft() domain.Draft {
	return domain.Draft{
		Job:      "Dog Walk (30 min)",
		Date:     "2026-08-09",
		Location: "Vancouver, BC",
		TimeSlot: "1PM - 3PM",
	}
}

func TestSubmit_Valid(t *testing.T) {
	at := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return at }))

	for _, f := range domain.Fields {
		require.NoError(t, s.UpdateDraftField(f, validDraft().Get(f)))
	}

	r, err := s.SubmitDraft()
	require.NoError(t, err)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, validDraft(), domain.DraftOf(r))
	assert.Equal(t, at, r.SubmittedAt)
	assert.NotEmpty(t, r.ID)
	assert.True(t, s.Draft().IsEmpty(), "draft should be reset after submit")

	got, ok := s.Get(r.ID)
	require.True(t, ok)
	assert.Equal(t, r, got)
}

func TestSubmit_MissingRequired(t *testing.T) {
	for _, f := range domain.RequiredFields {
		t.Run(string(f), func(t *testing.T) {
			s := New()
			_, err := s.Submit(validDraft())
			require.NoError(t, err)

			d, err := validDraft().With(f, "")
			require.NoError(t, err)
			for _, field := range domain.Fields {
				require.NoError(t, s.UpdateDraftField(field, d.Get(field)))
			}

			_, err = s.SubmitDraft()
			require.ErrorIs(t, err, domain.ErrMissingRequiredField)
			assert.Equal(t, 1, s.Len())
			assert.Equal(t, d, s.Draft(), "draft kept for correction")
		})
	}
}

func TestRemove(t *testing.T) {
	s := New()
	var ids []string
	for i := 0; i < 3; i++ {
		d := validDraft()
		d.Details = fmt.Sprintf("visit %d", i)
		r, err := s.Submit(d)
		require.NoError(t, err)
		ids = append(ids, r.ID)
	}

	assert.True(t, s.Remove(ids[1]))
	assert.Equal(t, 2, s.Len())
	_, ok := s.Get(ids[1])
	assert.False(t, ok)

	list := s.List()
	assert.Equal(t, ids[0], list[0].ID)
	assert.Equal(t, ids[2], list[1].ID)
}

func TestRemove_UnknownIsNoop(t *testing.T) {
	s := New()
	_, err := s.Submit(validDraft())
	require.NoError(t, err)

	assert.False(t, s.Remove("nope"))
	assert.Equal(t, 1, s.Len())
}

func TestIDsUnique(t *testing.T) {
	s := New()
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		r, err := s.Submit(validDraft())
		require.NoError(t, err)
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestIDsUnique_RepeatingGenerator(t *testing.T) {
	// a coarse clock-based generator returns the same token within one tick
	calls := 0
	gen := func() string {
		calls++
		return fmt.Sprint(calls / 3)
	}
	s := New(WithIDFunc(gen))

	a, err := s.Submit(validDraft())
	require.NoError(t, err)
	b, err := s.Submit(validDraft())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 3, calls)
}

func TestList_IsCopy(t *testing.T) {
	s := New()
	_, err := s.Submit(validDraft())
	require.NoError(t, err)

	list := s.List()
	list[0].Location = "mutated"

	assert.Equal(t, "Vancouver, BC", s.List()[0].Location)
}

func TestUpdateDraftField_Unknown(t *testing.T) {
	s := New()
	err := s.UpdateDraftField(domain.Field("price"), "10")
	assert.ErrorIs(t, err, domain.ErrUnknownField)
	assert.True(t, s.Draft().IsEmpty())
}

func TestResetDraft(t *testing.T) {
	s := New()
	require.NoError(t, s.UpdateDraftField(domain.FieldLocation, "Burnaby, BC"))
	s.ResetDraft()
	assert.True(t, s.Draft().IsEmpty())
}
