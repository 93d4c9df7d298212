package service

import (
	"encoding/json"
	"testing"

	"eodly/internal/model"
	"eodly/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpAndSignIn(t *testing.T) {
	st := store.NewMemStore()
	dir := NewDirectory(st)

	u, err := dir.SignUp("Riley", "riley@example.com", "secret", "ENFP")
	require.NoError(t, err)
	assert.Equal(t, "Team Member", u.Role)
	assert.Equal(t, "Engineering", u.Department)
	assert.Contains(t, u.Avatar, "ui-avatars.com")
	assert.Empty(t, u.Sanitized().PasswordHash)

	require.NotNil(t, dir.Current())
	assert.Equal(t, u.ID, dir.Current().ID)

	dir.SignOut()
	assert.Nil(t, dir.Current())

	// Any password is accepted; only the email is checked.
	again, err := dir.SignIn("riley@example.com", "completely-wrong")
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	st := store.NewMemStore()
	dir := NewDirectory(st)

	_, err := dir.SignUp("Riley", "riley@example.com", "pw", "")
	require.NoError(t, err)

	_, err = dir.SignUp("Impostor", "riley@example.com", "pw", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, dir.Users(), 1)
}

func TestSignInUnknownEmail(t *testing.T) {
	dir := NewDirectory(store.NewMemStore())
	_, err := dir.SignIn("ghost@example.com", "pw")
	assert.ErrorIs(t, err, ErrUnknownEmail)
	assert.Nil(t, dir.Current())
}

func TestUpdateProfileKeepsHash(t *testing.T) {
	st := store.NewMemStore()
	dir := NewDirectory(st)
	u, err := dir.SignUp("Riley", "riley@example.com", "pw", "INTJ")
	require.NoError(t, err)

	u.Name = "Riley R."
	u.MBTI = "INTP"
	dir.UpdateProfile(*u)

	cur := dir.Current()
	assert.Equal(t, "Riley R.", cur.Name)
	assert.Equal(t, "INTP", cur.MBTI)

	// The stored directory entry still carries the bcrypt hash.
	data, ok, err := st.Load(store.KeyUsers)
	require.NoError(t, err)
	require.True(t, ok)
	var users []model.User
	require.NoError(t, json.Unmarshal(data, &users))
	require.Len(t, users, 1)
	assert.NotEmpty(t, users[0].PasswordHash)
}

func TestSessionSurvivesReload(t *testing.T) {
	st := store.NewMemStore()
	dir := NewDirectory(st)
	u, err := dir.SignUp("Riley", "riley@example.com", "pw", "")
	require.NoError(t, err)

	dir2 := NewDirectory(st)
	require.NotNil(t, dir2.Current())
	assert.Equal(t, u.ID, dir2.Current().ID)
}

func TestOrphanSessionForcesSignOut(t *testing.T) {
	st := store.NewMemStore()
	ghost, err := json.Marshal(model.User{ID: "u-ghost", Name: "Ghost"})
	require.NoError(t, err)
	require.NoError(t, st.Save(store.KeySession, ghost))

	dir := NewDirectory(st)
	assert.Nil(t, dir.Current())
	_, ok, err := st.Load(store.KeySession)
	require.NoError(t, err)
	assert.False(t, ok, "stale session must be cleared")
}

func TestCorruptedUsersStartEmpty(t *testing.T) {
	st := store.NewMemStore()
	require.NoError(t, st.Save(store.KeyUsers, []byte(`"not an array"`)))

	dir := NewDirectory(st)
	assert.Empty(t, dir.Users())
}

func TestTheme(t *testing.T) {
	st := store.NewMemStore()
	dir := NewDirectory(st)
	assert.Equal(t, "light", dir.Theme())

	dir.SetTheme("dark")
	assert.Equal(t, "dark", dir.Theme())
	assert.Equal(t, "dark", NewDirectory(st).Theme())

	dir.SetTheme("neon")
	assert.Equal(t, "light", dir.Theme())
}
