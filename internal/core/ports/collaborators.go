package ports

import (
	"context"
	"io"
	"time"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// TokenIssuer issues bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// Principal is the caller identity carried by a verified token.
type Principal struct {
	Email string
	Roles []string
}

// TokenVerifier validates bearer tokens issued by a TokenIssuer.
type TokenVerifier interface {
	Verify(token string) (*Principal, error)
}

// LoginGuard throttles repeated failed logins per email.
type LoginGuard interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// ReportExporter renders a filled report table in the requested format.
type ReportExporter interface {
	Export(w io.Writer, format domain.ReportFormat, table domain.ReportTable) error
}

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	Filename string
	Content  []byte
}

// MailMessage is a plain-text email with optional attachments.
type MailMessage struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Mailer delivers email.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}

// EmailDispatch is an audit record of one email attempt.
type EmailDispatch struct {
	Destination string
	Subject     string
	Products    int
	Success     bool
	Error       string
	SentAt      time.Time
}

// DispatchLog records email attempts for later inspection.
type DispatchLog interface {
	Record(ctx context.Context, d EmailDispatch) error
}
