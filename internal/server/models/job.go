package models

import "time"

// Job is a posted listing. UserID references the owning user.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"desc"`
	Deadline    time.Time `json:"lastDate"`
	Company     string    `json:"company"`
	UserID      string    `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
}
