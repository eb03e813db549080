package agent

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLocation(t *testing.T) {
	cases := []struct {
		message string
		city    string
	}{
		{"I want to volunteer in Baltimore", "Baltimore"},
		{"Anything near Silver Spring?", "Silver Spring"},
		{"Looking for events around Annapolis.", "Annapolis"},
		{"Something in Baltimore area", "Baltimore"},
		{"Can I help at New York city, this weekend", "New York"},
	}
	for _, c := range cases {
		loc := extractLocation(c.message)
		require.NotNil(t, loc, "message %q", c.message)
		assert.Equal(t, c.city, loc["city"], "message %q", c.message)
	}
}

func TestExtractLocation_NoMatch(t *testing.T) {
	assert.Nil(t, extractLocation("I want to help with cooking"))
	assert.Nil(t, extractLocation("hello there"))
	// Lowercase place names are not picked up.
	assert.Nil(t, extractLocation("events in baltimore"))
}

func TestServicesForNeed(t *testing.T) {
	assert.Equal(t, []string{"food pantry", "soup kitchen"}, servicesForNeed("Food Assistance"))
	assert.Equal(t, []string{"counseling"}, servicesForNeed("grief counseling"))
	assert.Equal(t, []string{"youth ministry"}, servicesForNeed(" Youth Ministry "))
	assert.Nil(t, servicesForNeed("  "))
}

func TestMemoryConversationStore(t *testing.T) {
	store := NewMemoryConversationStore()
	ctx := context.Background()

	n, err := store.MessageCount(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, store.AddMessage(ctx, "s1", schema.UserMessage("hello")))
	require.NoError(t, store.AddMessage(ctx, "s1", schema.AssistantMessage("hi there", nil)))
	require.NoError(t, store.AddMessage(ctx, "s2", schema.UserMessage("other session")))

	history, err := store.LoadHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, schema.User, history[0].Role)
	assert.Equal(t, "hello", history[0].Content)
	assert.Equal(t, schema.Assistant, history[1].Role)

	// Sessions are isolated.
	other, err := store.LoadHistory(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, other, 1)

	require.NoError(t, store.ClearHistory(ctx, "s1"))
	history, err = store.LoadHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, history)

	other, err = store.LoadHistory(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestBuildTools_Count(t *testing.T) {
	tb := &Toolbox{}
	tools := tb.BuildTools()
	require.Len(t, tools, 4)

	names := make([]string, 0, len(tools))
	for _, tl := range tools {
		info, err := tl.Info(context.Background())
		require.NoError(t, err)
		names = append(names, info.Name)
	}
	assert.ElementsMatch(t, []string{
		"search_volunteer_opportunities",
		"find_nearby_parishes",
		"register_volunteer",
		"get_parish_analytics",
	}, names)
}
