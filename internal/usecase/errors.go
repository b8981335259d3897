package usecase

// DomainError is a lead-flow rule violation (bad mobile, unknown lead,
// operator outside the service). Handlers map it to a 4xx with the code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure the caller cannot correct;
// it surfaces as a 500 without leaking the backend detail.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
