package form

// StatusKind tags the per-form submission state. A form is created idle,
// moves to submitting on every attempt, and settles on success or error
// exactly once per attempt. Only a new submission changes it again.
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

// Status is the tagged submission state of one rendered form instance.
// Message is only meaningful for StatusSuccess and StatusError.
type Status struct {
	Kind    StatusKind
	Message string
}

func Idle() Status {
	return Status{Kind: StatusIdle}
}

func Submitting() Status {
	return Status{Kind: StatusSubmitting}
}

func Success(message string) Status {
	return Status{Kind: StatusSuccess, Message: message}
}

func Error(message string) Status {
	return Status{Kind: StatusError, Message: message}
}
