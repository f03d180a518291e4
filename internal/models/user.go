package models

import "time"

type User struct {
	ID        string    `json:"id" redis:"id"`
	CreatedAt time.Time `json:"created_at" redis:"created_at"`
}

type OnboardRequest struct {
	Username string `json:"username" binding:"required"`
}
