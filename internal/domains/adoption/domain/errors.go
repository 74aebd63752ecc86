package domain

import "fmt"

// RejectionKind names why a decision run was refused.
type RejectionKind string

const (
	KindInvalidAnimal RejectionKind = "InvalidAnimal"
	KindInvalidItem   RejectionKind = "InvalidItem"
)

// RejectionError is the error variant of a decision run. No decisions accompany it.
type RejectionError struct {
	Kind   RejectionKind
	Detail string
}

var (
	ErrInvalidAnimal = &RejectionError{Kind: KindInvalidAnimal}
	ErrInvalidItem   = &RejectionError{Kind: KindInvalidItem}
)

func (e *RejectionError) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is matches any rejection of the same kind regardless of detail.
func (e *RejectionError) Is(target error) bool {
	t, ok := target.(*RejectionError)
	return ok && t.Kind == e.Kind
}

func rejectAnimal(format string, args ...any) error {
	return &RejectionError{Kind: KindInvalidAnimal, Detail: fmt.Sprintf(format, args...)}
}

func rejectItem(format string, args ...any) error {
	return &RejectionError{Kind: KindInvalidItem, Detail: fmt.Sprintf(format, args...)}
}
