package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryStatusDescription(t *testing.T) {
	assert.Equal(t, "자유게시판", CategoryFree.Description())
	assert.Equal(t, "팁게시판", CategoryTip.Description())
	assert.Equal(t, "질문게시판", CategoryQuestion.Description())
	assert.Equal(t, "", CategoryStatus("NEWS").Description())

	assert.Len(t, CategoryStatuses(), 3)
	for _, s := range CategoryStatuses() {
		assert.True(t, s.Valid())
	}
	assert.False(t, CategoryStatus("free").Valid())
}

func TestPostPatchApplyOnlySuppliedFields(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := &Post{Title: "old", Content: "body", CategoryID: 2, UpdatedAt: created}

	title := "new"
	now := created.Add(time.Minute)
	PostPatch{Title: &title}.Apply(p, now)

	assert.Equal(t, "new", p.Title)
	assert.Equal(t, "body", p.Content)
	assert.Equal(t, uint(2), p.CategoryID)
	assert.Equal(t, now, p.UpdatedAt)
}

func TestUserPatchRejectsPointDecrease(t *testing.T) {
	u := &User{Nickname: "kim", TotalPoints: 10}
	lower := 5
	nick := "lee"

	err := UserPatch{Nickname: &nick, TotalPoints: &lower}.Apply(u, time.Now())
	require.ErrorIs(t, err, ErrPointsDecrease)
	assert.Equal(t, "kim", u.Nickname)
	assert.Equal(t, 10, u.TotalPoints)

	higher := 15
	require.NoError(t, UserPatch{TotalPoints: &higher}.Apply(u, time.Now()))
	assert.Equal(t, 15, u.TotalPoints)
}

func TestCategoryPatchValidatesStatus(t *testing.T) {
	c := &Category{Status: CategoryFree}
	bad := CategoryStatus("NEWS")
	assert.ErrorIs(t, CategoryPatch{Status: &bad}.Apply(c, time.Now()), ErrInvalidCategoryStatus)
	assert.Equal(t, CategoryFree, c.Status)

	tip := CategoryTip
	require.NoError(t, CategoryPatch{Status: &tip}.Apply(c, time.Now()))
	assert.Equal(t, CategoryTip, c.Status)
}

func TestNewSocialUserDefaults(t *testing.T) {
	u := NewSocialUser("12345", "", nil)
	assert.Equal(t, DefaultNickname, u.Nickname)
	assert.True(t, u.IsActive)
	assert.False(t, u.IsAdmin)
	assert.Zero(t, u.TotalPoints)
	assert.Nil(t, u.ProfileImage)
}
