// Package models defines the persistent entities of the Brain Dash server.
package models

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
