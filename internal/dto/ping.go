package dto

import "time"

type PingResponse struct {
	Message *string   `json:"message"`
	Service string    `json:"service"`
	Time    time.Time `json:"time"`
}
