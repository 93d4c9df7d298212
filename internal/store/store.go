package store

// Persisted keys, flat namespace. The value under each key is a whole JSON
// document replaced on every save.
const (
	KeyReports = "eodly_reports"
	KeyUsers   = "eodly_users"
	KeySession = "eodly_session"
	KeyTheme   = "eodly_theme"
)

// Store is key-value persistence for JSON-serializable records. Save has
// replace-whole-value semantics; there is no incremental update.
type Store interface {
	Load(key string) (value []byte, found bool, err error)
	Save(key string, value []byte) error
	Delete(key string) error
}
