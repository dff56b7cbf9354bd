package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNoSubjectInContext = errors.New("no subject found in context")
)

// ClaimsProvider is an interface that any claims type can implement
// to provide admin identification for authorization.
type ClaimsProvider interface {
	GetAdminID() uuid.UUID
}

type ctxKeyClaimsProvider struct{}

// WithClaimsProvider stores a ClaimsProvider in the context.
func WithClaimsProvider(ctx context.Context, cp ClaimsProvider) context.Context {
	return context.WithValue(ctx, ctxKeyClaimsProvider{}, cp)
}

// SubjectFromContext extracts the GroupSubject (admin ID) from context.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	id, err := AdminIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	return GroupSubject(id.String()), nil
}

// MustSubjectFromContext extracts the GroupSubject from context or panics.
// Use only when you're certain the subject exists (e.g., behind auth middleware).
func MustSubjectFromContext(ctx context.Context) GroupSubject {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return subject
}

// AdminIDFromContext extracts the admin ID as uuid.UUID from context.
// Returns uuid.Nil and error if not found.
func AdminIDFromContext(ctx context.Context) (uuid.UUID, error) {
	v := ctx.Value(ctxKeyClaimsProvider{})
	if v == nil {
		return uuid.Nil, ErrNoSubjectInContext
	}

	cp, ok := v.(ClaimsProvider)
	if !ok {
		return uuid.Nil, ErrNoSubjectInContext
	}

	id := cp.GetAdminID()
	if id == uuid.Nil {
		return uuid.Nil, ErrNoSubjectInContext
	}

	return id, nil
}
