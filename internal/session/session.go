package session

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when no session is cached under the given ID.
var ErrNotFound = errors.New("session not found")

// Session holds one authenticated console session. Credential is the opaque
// base64-encoded Basic credential forwarded to the POS ledger API; it is
// never decoded or inspected for expiry; a stale credential is only
// discovered when the upstream rejects a request.
type Session struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Credential string    `json:"credential"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store caches sessions for their lifetime. There is no refresh: Delete is
// the only way a credential leaves the cache before its TTL.
type Store interface {
	Put(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
