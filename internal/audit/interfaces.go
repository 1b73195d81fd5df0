package audit

import "time"

// Entry is one audited event of the verification workflow.
type Entry struct {
	Message   string
	Action    string
	Username  string
	Phone     string
	Outcome   string
	Timestamp time.Time
}

// ILogger is the append-only audit sink. No core logic depends on its
// storage format.
type ILogger interface {
	Send(entry Entry) error
	Search(searchCriteria map[string][]string) ([]map[string]interface{}, error)
	Close() error
}
