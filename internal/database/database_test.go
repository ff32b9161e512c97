package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return client
}

func TestCreateAndGetUser(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateUser(ctx, "alice", "hash", true)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	user, err := client.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.True(t, user.IsAdmin)

	_, err = client.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.CreateUser(ctx, "alice", "hash", true)
	require.NoError(t, err)

	_, err = client.CreateUser(ctx, "alice", "other", false)
	assert.Error(t, err)
}

func TestEventCRUD(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	event := &Event{Title: "Spring Gala", Date: "01.06.2025", Time: "18:00"}
	require.NoError(t, client.CreateEvent(ctx, event))
	require.NotZero(t, event.ID)

	got, err := client.GetEventByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spring Gala", got.Title)
	assert.Equal(t, "01.06.2025", got.Date)

	got.Title = "Autumn Gala"
	require.NoError(t, client.UpdateEvent(ctx, got))

	updated, err := client.GetEventByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Autumn Gala", updated.Title)

	_, err = client.GetEventByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteEventCascade(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	event := &Event{Title: "Spring Gala", Date: "01.06.2025", Time: "18:00"}
	require.NoError(t, client.CreateEvent(ctx, event))

	other := &Event{Title: "Other", Date: "02.06.2025", Time: "19:00"}
	require.NoError(t, client.CreateEvent(ctx, other))

	for i := 0; i < 3; i++ {
		require.NoError(t, client.CreateRegistration(ctx, &Registration{
			FirstName: "Guest",
			LastName:  "Person",
			EventID:   event.ID,
		}))
	}
	require.NoError(t, client.CreateRegistration(ctx, &Registration{
		FirstName: "Unrelated",
		LastName:  "Guest",
		EventID:   other.ID,
	}))

	require.NoError(t, client.DeleteEventCascade(ctx, event.ID))

	_, err := client.GetEventByID(ctx, event.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	registrations, err := client.GetRegistrationsByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, registrations)

	// the other event's registrations are untouched
	registrations, err = client.GetRegistrationsByEvent(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, registrations, 1)
}

func TestDeleteEventCascade_MissingEvent(t *testing.T) {
	client := newTestClient(t)

	err := client.DeleteEventCascade(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCountRegistrationsByEvent(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	first := &Event{Title: "First", Date: "01.06.2025", Time: "18:00"}
	require.NoError(t, client.CreateEvent(ctx, first))
	second := &Event{Title: "Second", Date: "02.06.2025", Time: "19:00"}
	require.NoError(t, client.CreateEvent(ctx, second))

	for i := 0; i < 2; i++ {
		require.NoError(t, client.CreateRegistration(ctx, &Registration{
			FirstName: "Guest",
			LastName:  "Person",
			EventID:   first.ID,
		}))
	}

	counts, err := client.CountRegistrationsByEvent(ctx, []uint{first.ID, second.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[first.ID])
	assert.Equal(t, int64(0), counts[second.ID])

	counts, err = client.CountRegistrationsByEvent(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestDeleteOrphanedRegistrations(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	event := &Event{Title: "Kept", Date: "01.06.2025", Time: "18:00"}
	require.NoError(t, client.CreateEvent(ctx, event))

	require.NoError(t, client.CreateRegistration(ctx, &Registration{
		FirstName: "Kept",
		LastName:  "Guest",
		EventID:   event.ID,
	}))
	require.NoError(t, client.CreateRegistration(ctx, &Registration{
		FirstName: "Orphaned",
		LastName:  "Guest",
		EventID:   9999,
	}))

	removed, err := client.DeleteOrphanedRegistrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	registrations, err := client.GetRegistrationsByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Len(t, registrations, 1)
}
