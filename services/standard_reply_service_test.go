package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/translationdesk/platform-go/dto"
	"github.com/translationdesk/platform-go/errs"
)

const seedYAML = `rejectionCategories:
  - key: mistranslation
    label: Mistranslation
  - key: tone
    label: Wrong tone
standardReplies:
  - projectId: 1
    title: Greeting
    text: Hello, thanks for reaching out.
    language: en
    sortOrder: 1
  - projectId: 1
    title: Closing
    text: Is there anything else we can help with?
    language: en
    sortOrder: 2
`

func TestSeedFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o644))

	f := newFixture()
	replies := &fakeStandardReplyRepo{}
	categories := &fakeRejectionCategoryRepo{}
	f.deps.Repos.StandardReply = replies
	f.deps.Repos.RejectionCategory = categories
	svc := NewStandardReplyService(f.deps)

	require.NoError(t, svc.SeedFromYAML(path))

	require.Len(t, categories.categories, 2)
	assert.Equal(t, "mistranslation", categories.categories[0].Key)
	assert.Equal(t, "Wrong tone", categories.categories[1].Label)

	require.Len(t, replies.replies, 2)
	assert.Equal(t, "Greeting", replies.replies[0].Title)
	assert.Equal(t, uint(1), replies.replies[1].ProjectID)
	assert.Equal(t, 2, replies.replies[1].SortOrder)
}

func TestSeedFromYAML_MissingFile(t *testing.T) {
	f := newFixture()
	svc := NewStandardReplyService(f.deps)
	assert.Error(t, svc.SeedFromYAML(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestStandardReplyCreateAndList(t *testing.T) {
	f := newFixture()
	replies := &fakeStandardReplyRepo{}
	f.deps.Repos.StandardReply = replies
	svc := NewStandardReplyService(f.deps)

	_, err := svc.Create(dto.CreateStandardReplyDTO{
		ProjectID: 3,
		Title:     "Escalation",
		Text:      "We are escalating this to our specialist team.",
		Language:  "en",
	})
	require.NoError(t, err)

	listed, err := svc.ListByProject(3)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Escalation", listed[0].Title)
}

func TestStandardReplyUpdate(t *testing.T) {
	f := newFixture()
	replies := &fakeStandardReplyRepo{}
	f.deps.Repos.StandardReply = replies
	svc := NewStandardReplyService(f.deps)

	created, err := svc.Create(dto.CreateStandardReplyDTO{
		ProjectID: 3,
		Title:     "Greeting",
		Text:      "Hello!",
		Language:  "en",
		SortOrder: 5,
	})
	require.NoError(t, err)

	order := 1
	updated, err := svc.Update(created.ID, dto.UpdateStandardReplyDTO{
		Text:      "Hello, thanks for writing in.",
		SortOrder: &order,
	})
	require.NoError(t, err)
	assert.Equal(t, "Greeting", updated.Title, "unset fields keep their value")
	assert.Equal(t, "Hello, thanks for writing in.", updated.Text)
	assert.Equal(t, 1, updated.SortOrder)

	stored, err := replies.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello, thanks for writing in.", stored.Text)
}

func TestStandardReplyUpdate_NotFound(t *testing.T) {
	f := newFixture()
	f.deps.Repos.StandardReply = &fakeStandardReplyRepo{}
	svc := NewStandardReplyService(f.deps)

	_, err := svc.Update(42, dto.UpdateStandardReplyDTO{Title: "nope"})
	assert.ErrorIs(t, err, errs.ErrReplyNotFound)
}
