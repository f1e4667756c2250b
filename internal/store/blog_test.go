package store

import (
	"testing"

	"keyblogger/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogCreateAndGet(t *testing.T) {
	g := testDB(t)
	seedUser(t, g, "alice")
	blogs := NewBlogStore(g)

	blog, err := blogs.Create("Engineering Notes", "alice")
	require.NoError(t, err)
	assert.NotZero(t, blog.ID)
	assert.Equal(t, "alice", blog.Username)
	assert.Equal(t, 0, blog.Votes)

	got, err := blogs.Get(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineering Notes", got.Title)
}

func TestBlogCreateDuplicateTitle(t *testing.T) {
	g := testDB(t)
	seedUser(t, g, "alice")
	seedUser(t, g, "bob")
	blogs := NewBlogStore(g)

	_, err := blogs.Create("Foo", "alice")
	require.NoError(t, err)

	// Titles are unique across all blogs, regardless of owner.
	_, err = blogs.Create("Foo", "bob")
	assert.ErrorIs(t, err, ErrDuplicateTitle)
}

func TestBlogGetNotFound(t *testing.T) {
	g := testDB(t)
	blogs := NewBlogStore(g)

	_, err := blogs.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlogUpdate(t *testing.T) {
	g := testDB(t)
	seedUser(t, g, "alice")
	blogs := NewBlogStore(g)

	blog, err := blogs.Create("Old Title", "alice")
	require.NoError(t, err)

	title := "New Title"
	updated, err := blogs.Update(blog.ID, "alice", BlogChanges{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	// The identifying column and untouched fields survive.
	assert.Equal(t, blog.ID, updated.ID)
	assert.Equal(t, "alice", updated.Username)

	// Applying the same change again yields the same row state.
	again, err := blogs.Update(blog.ID, "alice", BlogChanges{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, updated.ID, again.ID)
	assert.Equal(t, updated.Title, again.Title)
	assert.Equal(t, updated.Votes, again.Votes)
}

func TestBlogUpdateEmpty(t *testing.T) {
	g := testDB(t)
	seedUser(t, g, "alice")
	blogs := NewBlogStore(g)

	blog, err := blogs.Create("Foo", "alice")
	require.NoError(t, err)

	_, err = blogs.Update(blog.ID, "alice", BlogChanges{})
	assert.ErrorIs(t, err, query.ErrEmptyUpdate)
}

func TestBlogUpdateNotOwner(t *testing.T) {
	g := testDB(t)
	seedUser(t, g, "alice")
	seedUser(t, g, "bob")
	blogs := NewBlogStore(g)

	blog, err := blogs.Create("Foo", "alice")
	require.NoError(t, err)

	title := "Hijacked"
	_, err = blogs.Update(blog.ID, "bob", BlogChanges{Title: &title})
	assert.ErrorIs(t, err, ErrNotOwner)

	// The stored row is unchanged.
	got, err := blogs.Get(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "Foo", got.Title)
}

func TestBlogRemove(t *testing.T) {
	g := testDB(t)
	seedUser(t, g, "alice")
	seedUser(t, g, "bob")
	blogs := NewBlogStore(g)

	blog, err := blogs.Create("Foo", "alice")
	require.NoError(t, err)

	err = blogs.Remove(blog.ID, "bob")
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, blogs.Remove(blog.ID, "alice"))

	_, err = blogs.Get(blog.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = blogs.Remove(blog.ID, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlogVoteFloor(t *testing.T) {
	g := testDB(t)
	seedUser(t, g, "alice")
	blogs := NewBlogStore(g)

	blog, err := blogs.Create("Engineering Notes", "alice")
	require.NoError(t, err)

	// Two ups, three downs: the last down hits the floor and is a no-op.
	deltas := []int{1, 1, -1, -1, -1}
	want := []int{1, 2, 1, 0, 0}
	for i, delta := range deltas {
		votes, err := blogs.Vote(blog.ID, delta)
		require.NoError(t, err)
		assert.Equal(t, want[i], votes)
	}

	got, err := blogs.Get(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Votes)
}

func TestBlogVoteNotFound(t *testing.T) {
	g := testDB(t)
	blogs := NewBlogStore(g)

	_, err := blogs.Vote(42, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlogList(t *testing.T) {
	g := testDB(t)
	seedUser(t, g, "alice")
	seedUser(t, g, "bob")
	blogs := NewBlogStore(g)

	for _, b := range []struct{ title, owner string }{
		{"Foobar", "alice"},
		{"Foo", "alice"},
		{"Bar", "bob"},
	} {
		_, err := blogs.Create(b.title, b.owner)
		require.NoError(t, err)
	}

	all, err := blogs.List(query.NoFilter())
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Ordered by title.
	assert.Equal(t, "Bar", all[0].Title)
	assert.Equal(t, "Foo", all[1].Title)
	assert.Equal(t, "Foobar", all[2].Title)

	found, err := blogs.List(query.Search("foo"))
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Foo", found[0].Title)
	assert.Equal(t, "Foobar", found[1].Title)

	// filter matches owner usernames, not titles; the empty result is a
	// non-nil slice so it reaches clients as [] rather than null.
	none, err := blogs.List(query.ByOwner("foo"))
	require.NoError(t, err)
	require.NotNil(t, none)
	assert.Empty(t, none)

	mine, err := blogs.List(query.ByOwner("ali"))
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
