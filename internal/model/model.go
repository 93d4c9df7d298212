package model

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	MBTI     string `json:"mbti"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ReportInput is the exhaustively typed form payload for report creation.
// Unset optionals default to blanks inside the journal, not here.
type ReportInput struct {
	Date             string          `json:"date"`
	Content          string          `json:"content"`
	Blockers         string          `json:"blockers"`
	PlanForTomorrow  string          `json:"planForTomorrow"`
	Breaks           []BreakInterval `json:"breaks"`
	Files            []FileMeta      `json:"files"`
	Links            []string        `json:"links"`
	Start            string          `json:"start"`
	End              string          `json:"end"`
	OptimizedSummary string          `json:"optimizedSummary"`
	IsDraft          bool            `json:"isDraft"`
}

type PolishRequest struct {
	UserName string          `json:"userName"`
	Content  string          `json:"content"`
	Blockers string          `json:"blockers"`
	Plan     string          `json:"plan"`
	Date     string          `json:"date"`
	Shift    WorkHours       `json:"shift"`
	Breaks   []BreakInterval `json:"breaks"`
	Links    []string        `json:"links"`
	Files    []FileMeta      `json:"files"`
}

type PolishResponse struct {
	Summary  string `json:"summary"`
	Fallback bool   `json:"fallback"`
}

// DayStat is one point in the seven-day activity series.
type DayStat struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Blocked   int    `json:"blocked"`
}

type StatsOverview struct {
	Rate    int `json:"rate"`
	Blocked int `json:"blocked"`
	Count   int `json:"count"`
}

type StatsResponse struct {
	Chart    []DayStat     `json:"chart"`
	Overview StatsOverview `json:"overview"`
}
