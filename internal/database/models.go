package database

import "time"

type User struct {
	UserID       string
	Username     string
	MobileNumber string
	CreatedAt    time.Time
}

type Team struct {
	TeamID    string
	Name      string
	CreatedAt time.Time
}

// Report хранит yesterday/today как jsonb; распаковка в []string
// происходит на уровне репозитория.
type Report struct {
	ReportID   string
	TeamID     string
	UserID     string
	Yesterday  []byte
	Today      []byte
	Problems   string
	ReportDate time.Time
	CreatedAt  time.Time
}
