package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HERYORDEJY/FitQii/internal/dates"
	"github.com/HERYORDEJY/FitQii/internal/models"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()
	gdb, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })
	return NewRepository(gdb, nil)
}

// sessionOn builds a one-day session request anchored on day with the given
// clock span.
func sessionOn(name string, day time.Time, fromHour, toHour int) CreateSessionRequest {
	start := time.Date(day.Year(), day.Month(), day.Day(), fromHour, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), toHour, 0, 0, 0, day.Location())
	return CreateSessionRequest{
		Name:      name,
		Category:  "training",
		StartDate: dates.Midnight(day),
		EndDate:   dates.Midnight(day),
		StartTime: start,
		EndTime:   end,
	}
}

func TestInsertAndGetByID(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	day := time.Now()
	req := sessionOn("Morning run", day, 7, 8)
	req.Timezone = "Europe/Berlin"
	req.Link = "https://example.com/run"
	req.Description = "easy pace"

	before := time.Now().UnixMilli()
	created, err := repo.Insert(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Morning run", got.Name)
	assert.Equal(t, "training", got.Category)
	assert.Equal(t, models.StatusUpcoming, got.Status)

	// Date and time fields are stored as epoch milliseconds.
	assert.Equal(t, dates.Midnight(day).UnixMilli(), got.StartDate)
	assert.Equal(t, dates.Midnight(day).UnixMilli(), got.EndDate)
	assert.Equal(t, req.StartTime.UnixMilli(), got.StartTime)
	assert.Equal(t, req.EndTime.UnixMilli(), got.EndTime)

	require.NotNil(t, got.Link)
	assert.Equal(t, "https://example.com/run", *got.Link)
	require.NotNil(t, got.Description)
	assert.Equal(t, "easy pace", *got.Description)
	assert.Nil(t, got.Location)

	assert.GreaterOrEqual(t, got.CreatedAt, before)
	assert.Nil(t, got.UpdatedAt)
	assert.Nil(t, got.StatusAt)
}

func TestInsertRequiresDates(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, CreateSessionRequest{Name: "no dates", Category: "misc"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	// Nothing was written.
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestInsertRejectsUnknownStatus(t *testing.T) {
	repo := testRepo(t)

	req := sessionOn("bad status", time.Now(), 9, 10)
	req.Status = models.Status("archived")

	_, err := repo.Insert(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetByIDMissing(t *testing.T) {
	repo := testRepo(t)

	got, err := repo.GetByID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = repo.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdatePartial(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, sessionOn("Yoga", time.Now(), 18, 19))
	require.NoError(t, err)

	name := "Hot yoga"
	location := "Studio 3"
	updated, err := repo.Update(ctx, created.ID, UpdateSessionRequest{
		Name:     &name,
		Location: &location,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Hot yoga", updated.Name)
	require.NotNil(t, updated.Location)
	assert.Equal(t, "Studio 3", *updated.Location)

	// Untouched fields survive.
	assert.Equal(t, "training", updated.Category)
	assert.Equal(t, created.StartDate, updated.StartDate)
	assert.Equal(t, created.StartTime, updated.StartTime)

	require.NotNil(t, updated.UpdatedAt)
	assert.GreaterOrEqual(t, *updated.UpdatedAt, created.CreatedAt)
}

func TestUpdateStatusStampsStatusAt(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	req := sessionOn("Sparring", time.Now(), 20, 21)
	req.Status = models.StatusActive
	created, err := repo.Insert(ctx, req)
	require.NoError(t, err)

	before := time.Now().UnixMilli()
	completed := models.StatusCompleted
	updated, err := repo.Update(ctx, created.ID, UpdateSessionRequest{Status: &completed})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, updated.Status)
	require.NotNil(t, updated.StatusAt)
	assert.GreaterOrEqual(t, *updated.StatusAt, before)
}

func TestUpdateRejectsIllegalTransition(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	req := sessionOn("Done already", time.Now(), 6, 7)
	req.Status = models.StatusCompleted
	created, err := repo.Insert(ctx, req)
	require.NoError(t, err)

	active := models.StatusActive
	_, err = repo.Update(ctx, created.ID, UpdateSessionRequest{Status: &active})
	assert.ErrorIs(t, err, ErrValidation)

	// The row is untouched.
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)

	// Completing a session that was never active is also rejected.
	upcoming, err := repo.Insert(ctx, sessionOn("Not started", time.Now(), 8, 9))
	require.NoError(t, err)
	done := models.StatusCompleted
	_, err = repo.Update(ctx, upcoming.ID, UpdateSessionRequest{Status: &done})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateMissingSession(t *testing.T) {
	repo := testRepo(t)

	name := "ghost"
	_, err := repo.Update(context.Background(), 4242, UpdateSessionRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, sessionOn("Doomed", time.Now(), 11, 12))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrNotFound)
}

func TestTodaySessionsOverlap(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	now := time.Now()

	// Starts yesterday, ends today: still today's session.
	spanning := sessionOn("Overnight hike", now.AddDate(0, 0, -1), 22, 23)
	spanning.EndDate = dates.Midnight(now)
	_, err := repo.Insert(ctx, spanning)
	require.NoError(t, err)

	_, err = repo.Insert(ctx, sessionOn("Lunch swim", now, 12, 13))
	require.NoError(t, err)

	// Entirely last week: excluded.
	_, err = repo.Insert(ctx, sessionOn("Old spin class", now.AddDate(0, 0, -7), 9, 10))
	require.NoError(t, err)

	sessions, err := repo.TodaySessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	// Ascending by start date.
	assert.Equal(t, "Overnight hike", sessions[0].Name)
	assert.Equal(t, "Lunch swim", sessions[1].Name)
}

func TestWeekSessionsAlwaysSevenBuckets(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	now := time.Now()

	_, err := repo.Insert(ctx, sessionOn("Gym", now, 17, 18))
	require.NoError(t, err)

	buckets, err := repo.WeekSessions(ctx, WeekQuery{})
	require.NoError(t, err)
	require.Len(t, buckets, 7)

	assert.Equal(t, time.Sunday, buckets[0].Title.Weekday())
	assert.Equal(t, time.Saturday, buckets[6].Title.Weekday())

	total := 0
	for _, b := range buckets {
		total += len(b.Data)
	}
	assert.Equal(t, 1, total)
}

func TestWeekSessionsSearch(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	now := time.Now()

	_, err := repo.Insert(ctx, sessionOn("Gym Session", now, 17, 18))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, sessionOn("Piano practice", now, 19, 20))
	require.NoError(t, err)

	// Case-insensitive substring match.
	buckets, err := repo.WeekSessions(ctx, WeekQuery{Search: "gym"})
	require.NoError(t, err)
	require.Len(t, buckets, 7)

	total := 0
	for _, b := range buckets {
		total += len(b.Data)
	}
	assert.Equal(t, 1, total)

	// A miss still yields 7 buckets, all empty.
	buckets, err = repo.WeekSessions(ctx, WeekQuery{Search: "zzz-no-match"})
	require.NoError(t, err)
	require.Len(t, buckets, 7)
	for _, b := range buckets {
		assert.Empty(t, b.Data)
	}
}

func TestPastSessionsEmptyStore(t *testing.T) {
	repo := testRepo(t)

	buckets, err := repo.PastSessions(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, buckets)
}

func TestPastSessionsAnchoredOnFirst(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	now := time.Now()

	_, err := repo.Insert(ctx, sessionOn("First ever", now.AddDate(0, 0, -2), 10, 11))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, sessionOn("Yesterday", now.AddDate(0, 0, -1), 10, 11))
	require.NoError(t, err)

	buckets, err := repo.PastSessions(ctx, "")
	require.NoError(t, err)
	require.Len(t, buckets, 3) // two days ago through today

	assert.Equal(t, dates.Midnight(now.AddDate(0, 0, -2)), buckets[0].Title)
	assert.Len(t, buckets[0].Data, 1)
	assert.Len(t, buckets[1].Data, 1)
	assert.Empty(t, buckets[2].Data)
}

func TestSessionsInRange(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	now := time.Now()

	_, err := repo.Insert(ctx, sessionOn("Inside", now, 10, 11))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, sessionOn("Outside", now.AddDate(0, 0, 10), 10, 11))
	require.NoError(t, err)

	sessions, err := repo.SessionsInRange(ctx, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Inside", sessions[0].Name)
}

func TestSessionsInRangeValidation(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	now := time.Now()

	_, err := repo.SessionsInRange(ctx, time.Time{}, now)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = repo.SessionsInRange(ctx, now, time.Time{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = repo.SessionsInRange(ctx, now.AddDate(0, 0, 1), now)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSessionsByDate(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	now := time.Now()

	_, err := repo.Insert(ctx, sessionOn("Target day", now.AddDate(0, 0, 3), 10, 11))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, sessionOn("Other day", now.AddDate(0, 0, 4), 10, 11))
	require.NoError(t, err)

	sessions, err := repo.SessionsByDate(ctx, now.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Target day", sessions[0].Name)

	_, err = repo.SessionsByDate(ctx, time.Time{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCountAndHealth(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	assert.True(t, repo.HealthCheck(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.Insert(ctx, sessionOn("One", time.Now(), 8, 9))
	require.NoError(t, err)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAttachmentsRoundTrip(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	req := sessionOn("With files", time.Now(), 14, 15)
	req.Attachments = models.AttachmentList{
		{Name: "plan.pdf", URI: "file:///tmp/plan.pdf", MimeType: "application/pdf", Size: 2048},
	}

	created, err := repo.Insert(ctx, req)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, "plan.pdf", got.Attachments[0].Name)
	assert.Equal(t, int64(2048), got.Attachments[0].Size)
}
