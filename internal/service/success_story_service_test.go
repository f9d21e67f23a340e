package service

import (
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoryService(t *testing.T) *SuccessStoryService {
	t.Helper()
	return NewSuccessStoryService(repository.NewSuccessStoryRepository(newTestDB(t)))
}

func TestStoryCreateDefaultRating(t *testing.T) {
	stories := newStoryService(t)

	story, err := stories.Create(StoryCreate{Name: "小王", Story: "从零转行后端"})
	require.NoError(t, err)
	assert.Equal(t, 5, story.Rating)
	assert.False(t, story.Featured)
}

func TestStoryCreateRatingBounds(t *testing.T) {
	stories := newStoryService(t)

	_, err := stories.Create(StoryCreate{Name: "x", Story: "y", Rating: 6})
	assert.ErrorIs(t, err, util.ErrInvalidRating)

	_, err = stories.Create(StoryCreate{Name: "x", Story: "y", Rating: -1})
	assert.ErrorIs(t, err, util.ErrInvalidRating)

	story, err := stories.Create(StoryCreate{Name: "x", Story: "y", Rating: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, story.Rating)
}

func TestStoryUpdate(t *testing.T) {
	stories := newStoryService(t)

	story, err := stories.Create(StoryCreate{Name: "小王", Story: "旧内容"})
	require.NoError(t, err)

	newStory := "新内容"
	featured := true
	updated, err := stories.Update(story.ID, StoryUpdate{Story: &newStory, Featured: &featured})
	require.NoError(t, err)
	assert.Equal(t, "新内容", updated.Story)
	assert.True(t, updated.Featured)
	assert.Equal(t, "小王", updated.Name)

	badRating := 0
	_, err = stories.Update(story.ID, StoryUpdate{Rating: &badRating})
	assert.ErrorIs(t, err, util.ErrInvalidRating)
}

func TestStoryFeaturedList(t *testing.T) {
	stories := newStoryService(t)

	_, err := stories.Create(StoryCreate{Name: "普通", Story: "a"})
	require.NoError(t, err)
	_, err = stories.Create(StoryCreate{Name: "精选", Story: "b", Featured: true})
	require.NoError(t, err)

	featured, err := stories.Featured(10)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "精选", featured[0].Name)
}

func TestStoryDelete(t *testing.T) {
	stories := newStoryService(t)

	story, err := stories.Create(StoryCreate{Name: "小王", Story: "内容"})
	require.NoError(t, err)

	require.NoError(t, stories.Delete(story.ID))

	_, err = stories.Get(story.ID)
	assert.ErrorIs(t, err, util.ErrStoryNotFound)

	err = stories.Delete(9999)
	assert.ErrorIs(t, err, util.ErrStoryNotFound)
}
