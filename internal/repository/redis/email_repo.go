package redis

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultEmailCodeTTL = 5 * time.Minute
	InviteCodeTTL       = 48 * time.Hour

	EmailCodePrefix = "email:code"

	ScopeInvite = "invite"
	ScopeReset  = "reset"

	// two-phase keys: a code is pending until the mail goes out
	PendingSuffix   = "pending"
	ConfirmedSuffix = "confirmed"
)

var (
	ErrEmailNotFound       = errors.New("email not found")
	ErrEmailCodeDelFailed  = errors.New("email code delete failed")
	ErrCodePendingFailed   = errors.New("code pending failed")
	ErrCodeConfirmedFailed = errors.New("code confirmed failed")
)

// EmailRepository stores one-time codes per scope: invite codes for account
// creation, reset codes for forgotten passwords.
type EmailRepository struct{}

func scopeTTL(scope string) time.Duration {
	if scope == ScopeInvite {
		return InviteCodeTTL
	}
	return DefaultEmailCodeTTL
}

func key(scope, phase, email string) string {
	return fmt.Sprintf("%s:%s:%s:%s", EmailCodePrefix, scope, phase, email)
}

// SetPending writes the code under the pending key before the mail is sent.
func (e *EmailRepository) SetPending(scope, email, code string) error {
	if err := Client.Set(context.Background(), key(scope, PendingSuffix, email), code, scopeTTL(scope)).Err(); err != nil {
		return ErrCodePendingFailed
	}
	return nil
}

// Confirm promotes pending to confirmed once the mail went out. The move is a
// Lua script: read, copy with a fresh TTL, delete the source, atomically.
func (e *EmailRepository) Confirm(scope, email string) error {
	srcKey := key(scope, PendingSuffix, email)
	dstKey := key(scope, ConfirmedSuffix, email)

	script := `
local val = redis.call("GET", KEYS[1])
if not val then
  return 0
end
redis.call("SET", KEYS[2], val, "PX", ARGV[1])
redis.call("DEL", KEYS[1])
return 1
`
	px := int64(scopeTTL(scope) / time.Millisecond)
	res := Client.Eval(context.Background(), script, []string{srcKey, dstKey}, px)
	if err := res.Err(); err != nil {
		return ErrCodeConfirmedFailed
	}
	ok, _ := res.Int()
	if ok != 1 {
		return ErrCodeConfirmedFailed
	}
	return nil
}

// DeletePending drops the pending key. Idempotent.
func (e *EmailRepository) DeletePending(scope, email string) error {
	if err := Client.Del(context.Background(), key(scope, PendingSuffix, email)).Err(); err != nil {
		return ErrEmailCodeDelFailed
	}
	return nil
}

// GetConfirmed returns the confirmed code for verification.
func (e *EmailRepository) GetConfirmed(scope, email string) (string, error) {
	val, err := Client.Get(context.Background(), key(scope, ConfirmedSuffix, email)).Result()
	if err != nil {
		return "", ErrEmailNotFound
	}
	return val, nil
}

// DeleteConfirmed burns a code after a successful verification.
func (e *EmailRepository) DeleteConfirmed(scope, email string) error {
	if err := Client.Del(context.Background(), key(scope, ConfirmedSuffix, email)).Err(); err != nil {
		return ErrEmailCodeDelFailed
	}
	return nil
}
