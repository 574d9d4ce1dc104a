package httperr

import "errors"

// Kind classifica falhas de negócio para a camada de apresentação.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindAvailability Kind = "availability_rule"
	KindStateRule    Kind = "state_rule"
)

type DomainError struct {
	Kind    Kind
	Message string
}

func (e DomainError) Error() string {
	return e.Message
}

func Validation(msg string) error {
	return DomainError{Kind: KindValidation, Message: msg}
}

func NotFoundErr(msg string) error {
	return DomainError{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) error {
	return DomainError{Kind: KindConflict, Message: msg}
}

func Availability(msg string) error {
	return DomainError{Kind: KindAvailability, Message: msg}
}

func StateRule(msg string) error {
	return DomainError{Kind: KindStateRule, Message: msg}
}

func IsKind(err error, kind Kind) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

func AsDomain(err error) (DomainError, bool) {
	var de DomainError
	ok := errors.As(err, &de)
	return de, ok
}
