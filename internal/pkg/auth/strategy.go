package auth

import "time"

// Claims identify the authenticated trading account.
type Claims struct {
	UserID int64
	Role   string
}

// Strategy issues and verifies auth tokens.
type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

// Options tune token strategies.
type Options struct {
	TTL time.Duration
}
