package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"eodly/internal/logger"
	"eodly/internal/model"
	"eodly/internal/store"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUnknownEmail = errors.New("no account for this email")
)

// Directory tracks the known users and the signed-in identity. Email is the
// sign-in key; sign-in does not verify the password (the instance is private
// to its user), so only a bcrypt hash of the sign-up password is kept at rest.
type Directory struct {
	st store.Store

	mu      sync.RWMutex
	users   []model.User
	current *model.User
	theme   string
}

func NewDirectory(st store.Store) *Directory {
	d := &Directory{st: st, theme: "light"}

	if data, ok, err := st.Load(store.KeyUsers); err != nil {
		logger.Warn("directory: load users failed", "err", err)
	} else if ok {
		if err := json.Unmarshal(data, &d.users); err != nil {
			logger.Warn("directory: users corrupted, starting empty", "err", err)
			d.users = nil
		}
	}

	if data, ok, err := st.Load(store.KeySession); err != nil {
		logger.Warn("directory: load session failed", "err", err)
	} else if ok {
		var u model.User
		if err := json.Unmarshal(data, &u); err != nil {
			logger.Warn("directory: session corrupted, signing out", "err", err)
			st.Delete(store.KeySession)
		} else if d.byID(u.ID) == nil {
			// Authenticated but missing from the directory: force sign-out.
			logger.Warn("directory: session user not in directory, signing out", "uid", u.ID)
			st.Delete(store.KeySession)
		} else {
			d.current = &u
		}
	}

	if data, ok, err := st.Load(store.KeyTheme); err == nil && ok {
		if t := string(data); t == `"dark"` || t == "dark" {
			d.theme = "dark"
		}
	}

	return d
}

func (d *Directory) SignIn(email, password string) (*model.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].Email == email {
			u := d.users[i]
			d.current = &u
			d.persistSession()
			logger.Info("signin.ok", "uid", u.ID, "name", u.Name)
			return copyUser(u), nil
		}
	}
	logger.Warn("signin.failed", "email", email)
	return nil, ErrUnknownEmail
}

func (d *Directory) SignUp(name, email, password, mbti string) (*model.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].Email == email {
			return nil, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := model.User{
		ID:           newID("u"),
		Name:         name,
		Email:        email,
		Role:         "Team Member",
		Department:   "Engineering",
		Avatar:       avatarURL(name),
		MBTI:         mbti,
		PasswordHash: string(hash),
	}
	d.users = append(d.users, u)
	d.persistUsers()

	d.current = &u
	d.persistSession()
	logger.Info("signup.ok", "uid", u.ID, "name", u.Name)
	return copyUser(u), nil
}

// UpdateProfile replaces the matching directory entry and the session copy.
// The stored password hash survives the replacement.
func (d *Directory) UpdateProfile(u model.User) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].ID == u.ID {
			u.PasswordHash = d.users[i].PasswordHash
			d.users[i] = u
			break
		}
	}
	d.persistUsers()

	if d.current != nil && d.current.ID == u.ID {
		cp := u
		d.current = &cp
		d.persistSession()
	}
}

func (d *Directory) SignOut() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = nil
	if err := d.st.Delete(store.KeySession); err != nil {
		logger.Warn("directory: clear session failed", "err", err)
	}
}

// Current returns a copy of the signed-in user, or nil when unauthenticated.
func (d *Directory) Current() *model.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.current == nil {
		return nil
	}
	return copyUser(*d.current)
}

func (d *Directory) Users() []model.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.User, len(d.users))
	copy(out, d.users)
	return out
}

func (d *Directory) Theme() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.theme
}

func (d *Directory) SetTheme(theme string) {
	if theme != "dark" {
		theme = "light"
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.theme = theme
	if err := d.st.Save(store.KeyTheme, []byte(theme)); err != nil {
		logger.Warn("directory: save theme failed", "err", err)
	}
}

func (d *Directory) byID(id string) *model.User {
	for i := range d.users {
		if d.users[i].ID == id {
			return &d.users[i]
		}
	}
	return nil
}

func (d *Directory) persistUsers() {
	data, err := json.Marshal(d.users)
	if err != nil {
		logger.Error("directory: marshal users failed", "err", err)
		return
	}
	if err := d.st.Save(store.KeyUsers, data); err != nil {
		logger.Warn("directory: save users failed", "err", err)
	}
}

func (d *Directory) persistSession() {
	if d.current == nil {
		return
	}
	data, err := json.Marshal(d.current)
	if err != nil {
		logger.Error("directory: marshal session failed", "err", err)
		return
	}
	if err := d.st.Save(store.KeySession, data); err != nil {
		logger.Warn("directory: save session failed", "err", err)
	}
}

func copyUser(u model.User) *model.User { return &u }

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=001d3d&color=fff"
}

var (
	idMu   sync.Mutex
	lastID int64
)

// newID stamps an identifier from the current time; a bump keeps IDs unique
// when two are minted within the same millisecond.
func newID(prefix string) string {
	idMu.Lock()
	defer idMu.Unlock()
	ms := time.Now().UnixMilli()
	if ms <= lastID {
		ms = lastID + 1
	}
	lastID = ms
	return fmt.Sprintf("%s-%d", prefix, ms)
}
