package store_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthquest/backend/internal/model"
	"healthquest/backend/internal/repository"
	"healthquest/backend/internal/store"
)

// memSlots is an in-memory persistence substrate for tests.
type memSlots struct {
	values map[string]string
	failed bool
}

func newMemSlots() *memSlots {
	return &memSlots{values: map[string]string{}}
}

func (m *memSlots) Get(_ context.Context, key string) (string, error) {
	if m.failed {
		return "", errors.New("slot store unavailable")
	}
	val, ok := m.values[key]
	if !ok {
		return "", repository.ErrNotFound
	}
	return val, nil
}

func (m *memSlots) Set(_ context.Context, key, value string) error {
	if m.failed {
		return errors.New("slot store unavailable")
	}
	m.values[key] = value
	return nil
}

func userMsg(text string) model.Message {
	return model.Message{
		Role:      model.RoleUser,
		Text:      text,
		Timestamp: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestProfileStore_LoadDefaultsWhenMissing(t *testing.T) {
	s := store.NewProfileStore(newMemSlots())
	s.Load(context.Background())

	assert.Equal(t, model.UserProfile{}, s.Get())
}

func TestProfileStore_LoadFailsSoftOnMalformedData(t *testing.T) {
	slots := newMemSlots()
	slots.values[store.SlotUserProfile] = "{not json"

	s := store.NewProfileStore(slots)
	s.Load(context.Background())

	assert.Equal(t, model.UserProfile{}, s.Get())
}

func TestProfileStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	slots := newMemSlots()

	first := store.NewProfileStore(slots)
	first.Load(ctx)
	profile := model.UserProfile{Name: "Jane", Age: "30", Height: "5' 8", Weight: "150 lbs", Steps: "10000", Notes: "vegetarian"}
	first.Save(ctx, profile)

	second := store.NewProfileStore(slots)
	second.Load(ctx)
	assert.Equal(t, profile, second.Get())
}

func TestProfileStore_SaveSwallowsPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	slots := newMemSlots()
	slots.failed = true

	s := store.NewProfileStore(slots)
	s.Load(ctx)
	s.Save(ctx, model.UserProfile{Name: "Jane"})

	// In-memory state stays authoritative.
	assert.Equal(t, "Jane", s.Get().Name)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, store.IsEmpty(model.UserProfile{}))
	assert.True(t, store.IsEmpty(model.UserProfile{Name: "   ", Notes: "\t"}))
	assert.False(t, store.IsEmpty(model.UserProfile{Weight: "80 kg"}))
}

func TestSessionStore_LoadEmptyOnMissingOrMalformed(t *testing.T) {
	ctx := context.Background()

	s := store.NewSessionStore(newMemSlots())
	s.Load(ctx)
	assert.Empty(t, s.Collection().Sessions)
	assert.Nil(t, s.ActiveID())

	slots := newMemSlots()
	slots.values[store.SlotChatHistory] = "][ nope"
	s = store.NewSessionStore(slots)
	s.Load(ctx)
	assert.Empty(t, s.Collection().Sessions)
}

func TestSessionStore_TitleDerivation(t *testing.T) {
	ctx := context.Background()

	t.Run("short text is used verbatim", func(t *testing.T) {
		s := store.NewSessionStore(newMemSlots())
		id := s.CreateSession(ctx, userMsg("What should I eat?"))

		sess, ok := s.Get(id)
		require.True(t, ok)
		assert.Equal(t, "What should I eat?", sess.Title)
	})

	t.Run("long text is truncated to 40 chars plus ellipsis", func(t *testing.T) {
		s := store.NewSessionStore(newMemSlots())
		long := strings.Repeat("a", 45)
		id := s.CreateSession(ctx, userMsg(long))

		sess, _ := s.Get(id)
		assert.Equal(t, strings.Repeat("a", 40)+"...", sess.Title)
	})

	t.Run("exactly 40 chars gets no ellipsis", func(t *testing.T) {
		s := store.NewSessionStore(newMemSlots())
		exact := strings.Repeat("b", 40)
		id := s.CreateSession(ctx, userMsg(exact))

		sess, _ := s.Get(id)
		assert.Equal(t, exact, sess.Title)
	})

	t.Run("image-only opening falls back", func(t *testing.T) {
		s := store.NewSessionStore(newMemSlots())
		msg := userMsg("")
		msg.Image = &model.ImageData{MIMEType: "image/png", Data: "aGk="}
		id := s.CreateSession(ctx, msg)

		sess, _ := s.Get(id)
		assert.Equal(t, "Image Query", sess.Title)
	})

	t.Run("title is fixed at creation", func(t *testing.T) {
		s := store.NewSessionStore(newMemSlots())
		id := s.CreateSession(ctx, userMsg("original"))
		s.AppendMessage(ctx, id, userMsg("a much later and much longer message that changes nothing"))

		sess, _ := s.Get(id)
		assert.Equal(t, "original", sess.Title)
	})
}

func TestSessionStore_NewSessionsArePrepended(t *testing.T) {
	ctx := context.Background()
	s := store.NewSessionStore(newMemSlots())

	first := s.CreateSession(ctx, userMsg("first"))
	second := s.CreateSession(ctx, userMsg("second"))

	sessions := s.Collection().Sessions
	require.Len(t, sessions, 2)
	assert.Equal(t, second, sessions[0].ID)
	assert.Equal(t, first, sessions[1].ID)
}

func TestSessionStore_AppendToMissingSessionIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := store.NewSessionStore(newMemSlots())
	s.CreateSession(ctx, userMsg("hello"))

	assert.NotPanics(t, func() {
		s.AppendMessage(ctx, "no-such-session", userMsg("lost"))
	})
	require.Len(t, s.Collection().Sessions, 1)
	assert.Len(t, s.Collection().Sessions[0].Messages, 1)
}

func TestSessionStore_DeleteActiveClearsActiveID(t *testing.T) {
	ctx := context.Background()
	s := store.NewSessionStore(newMemSlots())

	id := s.CreateSession(ctx, userMsg("hello"))
	require.True(t, s.SetActive(ctx, &id))

	s.DeleteSession(ctx, id)

	assert.Nil(t, s.ActiveID())
	assert.Empty(t, s.Collection().Sessions)
}

func TestSessionStore_DeleteNonActiveKeepsActiveID(t *testing.T) {
	ctx := context.Background()
	s := store.NewSessionStore(newMemSlots())

	other := s.CreateSession(ctx, userMsg("other"))
	active := s.CreateSession(ctx, userMsg("active"))
	require.True(t, s.SetActive(ctx, &active))

	s.DeleteSession(ctx, other)

	require.NotNil(t, s.ActiveID())
	assert.Equal(t, active, *s.ActiveID())
}

func TestSessionStore_SetActiveRejectsUnknownID(t *testing.T) {
	ctx := context.Background()
	s := store.NewSessionStore(newMemSlots())

	unknown := "ghost"
	assert.False(t, s.SetActive(ctx, &unknown))
	assert.Nil(t, s.ActiveID())
}

func TestSessionStore_PersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	slots := newMemSlots()

	first := store.NewSessionStore(slots)
	id := first.CreateSession(ctx, userMsg("hello"))
	reply := model.Message{
		Role:      model.RoleModel,
		Text:      "## Answer\n**Fiber** helps.",
		Sources:   []model.GroundingSource{{URI: "https://pubmed.ncbi.nlm.nih.gov/1", Title: "Fiber study"}},
		Timestamp: time.Date(2026, 8, 30, 12, 0, 5, 0, time.UTC),
	}
	first.AppendMessage(ctx, id, reply)
	first.SetActive(ctx, &id)

	second := store.NewSessionStore(slots)
	second.Load(ctx)

	assert.Equal(t, first.Collection(), second.Collection())
}

func TestSessionStore_LoadClearsDanglingActiveID(t *testing.T) {
	ctx := context.Background()
	slots := newMemSlots()
	slots.values[store.SlotChatHistory] = `{"sessions":[],"active_id":"gone"}`

	s := store.NewSessionStore(slots)
	s.Load(ctx)

	assert.Nil(t, s.ActiveID())
}

func TestSessionStore_MutationsSurvivePersistenceFailure(t *testing.T) {
	ctx := context.Background()
	slots := newMemSlots()
	slots.failed = true

	s := store.NewSessionStore(slots)
	id := s.CreateSession(ctx, userMsg("hello"))

	sess, ok := s.Get(id)
	require.True(t, ok)
	assert.Len(t, sess.Messages, 1)
}
