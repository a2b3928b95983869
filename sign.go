package xpyun

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"time"
)

// requestSign computes the signature the platform expects: the lowercase
// hex SHA-1 of user + userKey + timestamp, where timestamp is a unix
// seconds value in decimal.
func requestSign(user, userKey, timestamp string) string {
	sum := sha1.Sum([]byte(user + userKey + timestamp))
	return hex.EncodeToString(sum[:])
}

// authParams returns the authentication parameters carried by every
// request: the account user, the current timestamp and the signature
// over both.
func (c *Client) authParams(now time.Time) map[string]any {
	timestamp := strconv.FormatInt(now.Unix(), 10)
	return map[string]any{
		"user":      c.user,
		"timestamp": timestamp,
		"sign":      requestSign(c.user, c.userKey, timestamp),
	}
}
