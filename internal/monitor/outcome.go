package monitor

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// OutcomeKind classifies a probe result.
type OutcomeKind uint8

const (
	// KindPending means no probe has completed for this slot yet.
	KindPending OutcomeKind = iota
	// KindSuccess means the site answered with an HTTP status code.
	KindSuccess
	// KindFailure means the probe timed out or hit a transport error.
	KindFailure
)

// Outcome is the classified result of a single probe. The zero value is Pending.
// Two outcomes are equal when their kinds match and, for Success, their codes match;
// Outcome is comparable with ==.
type Outcome struct {
	Kind OutcomeKind
	Code int
}

// Pending returns the outcome used for slots with no completed probe.
func Pending() Outcome { return Outcome{} }

// Success returns the outcome for a probe that received an HTTP response.
func Success(code int) Outcome { return Outcome{Kind: KindSuccess, Code: code} }

// Failure returns the outcome for a probe that did not complete.
func Failure() Outcome { return Outcome{Kind: KindFailure} }

func (o Outcome) IsPending() bool { return o.Kind == KindPending }
func (o Outcome) IsSuccess() bool { return o.Kind == KindSuccess }
func (o Outcome) IsFailure() bool { return o.Kind == KindFailure }

// IsUp reports whether the site answered with a non-error status (below 400).
func (o Outcome) IsUp() bool {
	return o.Kind == KindSuccess && o.Code < 400
}

// String renders the outcome for status text, e.g. "200 OK", "down", "pending".
func (o Outcome) String() string {
	switch o.Kind {
	case KindSuccess:
		if text := http.StatusText(o.Code); text != "" {
			return fmt.Sprintf("%d %s", o.Code, text)
		}
		return fmt.Sprintf("%d", o.Code)
	case KindFailure:
		return "down"
	default:
		return "pending"
	}
}

// ChartValue maps the outcome onto the chart's vertical axis:
// 200 is 1, any other code is 0.5, failure is 0. Pending has no value.
func (o Outcome) ChartValue() (float64, bool) {
	switch o.Kind {
	case KindSuccess:
		if o.Code == http.StatusOK {
			return 1, true
		}
		return 0.5, true
	case KindFailure:
		return 0, true
	default:
		return 0, false
	}
}

// MarshalJSON encodes the outcome as "pending", "failure" or the integer code.
func (o Outcome) MarshalJSON() ([]byte, error) {
	switch o.Kind {
	case KindSuccess:
		return json.Marshal(o.Code)
	case KindFailure:
		return json.Marshal("failure")
	default:
		return json.Marshal("pending")
	}
}
