package session

import "fmt"

type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusCancelled
)

type Kind int

const (
	KindNone Kind = iota
	KindEngine
	KindDevice
	KindBusy
	KindState
)

func (k Kind) String() string {
	switch k {
	case KindEngine:
		return "engine"
	case KindDevice:
		return "device"
	case KindBusy:
		return "busy"
	case KindState:
		return "state"
	}
	return ""
}

// Outcome is the terminal result of one dispatched Command.
type Outcome struct {
	Status  Status
	Kind    Kind
	Message string
}

func Successf(format string, args ...interface{}) Outcome {
	return Outcome{Status: StatusSuccess, Message: fmt.Sprintf(format, args...)}
}

func Failure(kind Kind, message string) Outcome {
	return Outcome{Status: StatusFailure, Kind: kind, Message: message}
}

func Cancelled() Outcome {
	return Outcome{Status: StatusCancelled, Message: "cancelled"}
}

// Render formats an Outcome as the single line the shell prints.
func (o Outcome) Render() string {
	switch o.Status {
	case StatusFailure:
		if k := o.Kind.String(); k != "" {
			return fmt.Sprintf("ERROR(%s): %s", k, o.Message)
		}
		return fmt.Sprintf("ERROR: %s", o.Message)
	case StatusCancelled:
		return "cancelled"
	}
	return o.Message
}
