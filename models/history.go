package models

import "time"

type HistoryRecord struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Explanation string    `json:"explanation,omitempty"`
	Steps       string    `json:"steps,omitempty"`
	Subject     string    `json:"subject"`
	CreatedAt   time.Time `json:"created_at"`
}

type HistoryPage struct {
	Total     int              `json:"total"`
	Page      int              `json:"page"`
	Limit     int              `json:"limit"`
	Responses []*HistoryRecord `json:"responses"`
}
