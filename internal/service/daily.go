package service

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"eodly/internal/logger"
	"eodly/internal/model"
	"eodly/internal/store"
)

// Deleted reports older than this are purged at load time.
const trashRetention = 30 * 24 * time.Hour

const blankTime = "--:-- --"

// Journal owns the in-memory report collection. Every mutation rewrites the
// whole collection to the store; queries are pure functions over the current
// snapshot.
type Journal struct {
	st  store.Store
	dir *Directory

	mu      sync.RWMutex
	reports []model.Report
}

func NewJournal(st store.Store, dir *Directory) *Journal {
	j := &Journal{st: st, dir: dir}

	if data, ok, err := st.Load(store.KeyReports); err != nil {
		logger.Warn("journal: load reports failed", "err", err)
	} else if ok {
		if err := json.Unmarshal(data, &j.reports); err != nil {
			logger.Warn("journal: reports corrupted, starting empty", "err", err)
			j.reports = nil
		}
	}

	return j
}

// Add constructs a report from the form input and prepends it to the
// collection (newest-first by insertion). Without a signed-in user this is a
// silent no-op.
func (j *Journal) Add(input model.ReportInput, isDraft bool) *model.Report {
	current := j.dir.Current()
	if current == nil {
		logger.Debug("journal: add without session ignored")
		return nil
	}

	now := time.Now()
	date := input.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}
	avatar := current.Avatar
	if avatar == "" {
		avatar = avatarURL(current.Name)
	}
	department := current.Department
	if department == "" {
		department = "Operations"
	}
	start, end := input.Start, input.End
	if start == "" {
		start = blankTime
	}
	if end == "" {
		end = blankTime
	}

	r := model.Report{
		ID:               newID("r"),
		UserID:           current.ID,
		UserName:         current.Name,
		UserAvatar:       avatar,
		UserMBTI:         current.MBTI,
		Timestamp:        now.Format(time.RFC3339),
		Date:             date,
		Status:           model.StatusDone,
		Content:          input.Content,
		Blockers:         input.Blockers,
		PlanForTomorrow:  input.PlanForTomorrow,
		Breaks:           emptyIfNil(input.Breaks),
		Files:            emptyIfNil(input.Files),
		Links:            emptyIfNil(input.Links),
		Department:       department,
		WorkHours:        model.WorkHours{Start: start, End: end},
		OptimizedSummary: input.OptimizedSummary,
		IsDraft:          isDraft,
	}

	j.mu.Lock()
	j.reports = append([]model.Report{r}, j.reports...)
	j.persistLocked()
	j.mu.Unlock()

	logger.Info("journal: report added", "id", r.ID, "uid", r.UserID, "date", r.Date, "draft", isDraft)
	return &r
}

// MoveToTrash soft-deletes the matching report, refreshing DeletedAt if it is
// already trashed. The returned closure restores it (the undo affordance).
// An unknown id changes nothing and yields a no-op undo.
func (j *Journal) MoveToTrash(id string) (undo func()) {
	j.mu.Lock()
	found := false
	for i := range j.reports {
		if j.reports[i].ID == id {
			j.reports[i].IsDeleted = true
			j.reports[i].DeletedAt = time.Now().Format(time.RFC3339)
			found = true
			break
		}
	}
	if found {
		j.persistLocked()
	}
	j.mu.Unlock()

	if !found {
		return func() {}
	}
	logger.Info("journal: report trashed", "id", id)
	return func() { j.Restore(id) }
}

func (j *Journal) Restore(id string) {
	j.mu.Lock()
	found := false
	for i := range j.reports {
		if j.reports[i].ID == id {
			j.reports[i].IsDeleted = false
			j.reports[i].DeletedAt = ""
			found = true
			break
		}
	}
	if found {
		j.persistLocked()
	}
	j.mu.Unlock()

	if found {
		logger.Info("journal: report restored", "id", id)
	}
}

// EmptyTrash permanently removes every trashed report owned by userID.
func (j *Journal) EmptyTrash(userID string) {
	j.mu.Lock()
	kept := j.reports[:0]
	for _, r := range j.reports {
		if !(r.IsDeleted && r.UserID == userID) {
			kept = append(kept, r)
		}
	}
	j.reports = kept
	j.persistLocked()
	j.mu.Unlock()

	logger.Info("journal: trash emptied", "uid", userID)
}

// PurgeExpired removes trashed reports whose DeletedAt is at least the
// retention window before now. A trashed report without a parseable DeletedAt
// never expires. Returns the number purged.
func (j *Journal) PurgeExpired(now time.Time) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	kept := j.reports[:0]
	purged := 0
	for _, r := range j.reports {
		if r.IsDeleted && r.DeletedAt != "" {
			if t, err := time.Parse(time.RFC3339, r.DeletedAt); err == nil && now.Sub(t) >= trashRetention {
				purged++
				continue
			}
		}
		kept = append(kept, r)
	}
	j.reports = kept
	if purged > 0 {
		j.persistLocked()
		logger.Info("journal: expired reports purged", "count", purged)
	}
	return purged
}

// Active returns every report that is not in the trash.
func (j *Journal) Active() []model.Report {
	return j.filter(func(r model.Report) bool { return !r.IsDeleted })
}

// Submitted returns active, non-draft reports: the dashboard, export and
// stats feed.
func (j *Journal) Submitted() []model.Report {
	return j.filter(func(r model.Report) bool { return !r.IsDeleted && !r.IsDraft })
}

// Trash returns the trashed reports owned by userID.
func (j *Journal) Trash(userID string) []model.Report {
	return j.filter(func(r model.Report) bool { return r.IsDeleted && r.UserID == userID })
}

// Drafts returns the active drafts owned by userID.
func (j *Journal) Drafts(userID string) []model.Report {
	return j.filter(func(r model.Report) bool {
		return !r.IsDeleted && r.IsDraft && r.UserID == userID
	})
}

// History returns the user's submitted reports, optionally narrowed by a
// case-insensitive substring match against date, content or blockers.
func (j *Journal) History(userID, query string) []model.Report {
	q := strings.ToLower(strings.TrimSpace(query))
	return j.filter(func(r model.Report) bool {
		if r.IsDeleted || r.IsDraft || r.UserID != userID {
			return false
		}
		if q == "" {
			return true
		}
		return strings.Contains(r.Date, q) ||
			strings.Contains(strings.ToLower(r.Content), q) ||
			strings.Contains(strings.ToLower(r.Blockers), q)
	})
}

// Get returns the report with the given id, or nil.
func (j *Journal) Get(id string) *model.Report {
	j.mu.RLock()
	defer j.mu.RUnlock()
	for i := range j.reports {
		if j.reports[i].ID == id {
			r := j.reports[i]
			return &r
		}
	}
	return nil
}

func (j *Journal) filter(keep func(model.Report) bool) []model.Report {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]model.Report, 0, len(j.reports))
	for _, r := range j.reports {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (j *Journal) persistLocked() {
	data, err := json.Marshal(j.reports)
	if err != nil {
		logger.Error("journal: marshal reports failed", "err", err)
		return
	}
	if err := j.st.Save(store.KeyReports, data); err != nil {
		logger.Warn("journal: save reports failed", "err", err)
	}
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
