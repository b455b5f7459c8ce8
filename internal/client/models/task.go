// Package models holds the wire shapes the CLI exchanges with the Brain Dash
// server.
package models

import "time"

// Task is a stored task as the server returns it.
type Task struct {
	ID          int64     `json:"id"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Urgency     string    `json:"urgency"`
	EnergyLevel string    `json:"energy_level"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTask is a parsed-but-unsaved task, as returned by the dump parser and
// accepted by the bulk save endpoint.
type NewTask struct {
	Content     string `json:"content"`
	Category    string `json:"category"`
	Urgency     string `json:"urgency"`
	EnergyLevel string `json:"energy_level"`
}

// Session is the identity the auth endpoint issues.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
