package internal

import "time"

const (
	SecTen            = 10 * time.Second
	SecFive           = 5 * time.Second
	MinOne            = 60 * time.Second
	OneDay            = 24 * time.Hour
	SessionCookieName = "todo_session"
	SessionIssuer     = "todoServer"
	SessionAudience   = "todoClient"
)
