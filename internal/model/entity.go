package model

type ReportStatus string

const (
	StatusDone       ReportStatus = "DONE"
	StatusPending    ReportStatus = "PENDING"
	StatusBlocked    ReportStatus = "BLOCKED"
	StatusInProgress ReportStatus = "IN_PROGRESS"
)

type BreakInterval struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// FileMeta carries attachment metadata only; file content is never persisted.
type FileMeta struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type WorkHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Department   string `json:"department"`
	Avatar       string `json:"avatar"`
	MBTI         string `json:"mbti,omitempty"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// Sanitized strips the stored password hash for wire responses.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// Report is one end-of-day journal entry. It belongs to exactly one user for
// its lifetime; the user display fields are denormalized at creation time.
// IsDeleted=true implies DeletedAt is set.
type Report struct {
	ID               string          `json:"id"`
	UserID           string          `json:"userId"`
	UserName         string          `json:"userName"`
	UserAvatar       string          `json:"userAvatar"`
	UserMBTI         string          `json:"userMbti,omitempty"`
	Timestamp        string          `json:"timestamp"`
	Date             string          `json:"date"`
	Status           ReportStatus    `json:"status"`
	Content          string          `json:"content"`
	Blockers         string          `json:"blockers"`
	PlanForTomorrow  string          `json:"planForTomorrow"`
	Breaks           []BreakInterval `json:"breaks"`
	Files            []FileMeta      `json:"files"`
	Links            []string        `json:"links"`
	Department       string          `json:"department"`
	WorkHours        WorkHours       `json:"workHours"`
	OptimizedSummary string          `json:"optimizedSummary,omitempty"`
	IsDraft          bool            `json:"isDraft"`
	IsDeleted        bool            `json:"isDeleted"`
	DeletedAt        string          `json:"deletedAt,omitempty"`
}
