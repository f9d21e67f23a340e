package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringListRoundTrip(t *testing.T) {
	list := JoinList([]string{"go", "backend", "教学"})
	assert.Equal(t, StringList("go,backend,教学"), list)
	assert.Equal(t, []string{"go", "backend", "教学"}, list.Values())
}

func TestStringListEmpty(t *testing.T) {
	assert.Empty(t, StringList("").Values())
	assert.Equal(t, StringList(""), JoinList(nil))
}

func TestStringListTrimsBlanks(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StringList(" a , ,b ").Values())
}

func TestUserRoleValid(t *testing.T) {
	assert.True(t, Student.Valid())
	assert.True(t, Teacher.Valid())
	assert.True(t, Admin.Valid())
	assert.False(t, UserRole("superuser").Valid())
	assert.False(t, UserRole("").Valid())
}

func TestContentStatusValid(t *testing.T) {
	assert.True(t, StatusDraft.Valid())
	assert.True(t, StatusPublished.Valid())
	assert.True(t, StatusArchived.Valid())
	assert.False(t, ContentStatus("hidden").Valid())
}
