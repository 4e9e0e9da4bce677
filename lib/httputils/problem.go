package httputils

import (
	"net/http"

	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

const ProblemTypeDefault = "about:blank"

// Problem is a RFC 7807 problem detail.
type Problem struct {
	Type     string      `json:"type"`
	Title    string      `json:"title"`
	Status   int         `json:"status,omitempty"`
	Detail   string      `json:"detail,omitempty"`
	Instance string      `json:"instance,omitempty"`
	Code     uint        `json:"code,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

func NewStatusProblem(status int) Problem {
	return Problem{
		Type:   ProblemTypeDefault,
		Title:  http.StatusText(status),
		Status: status,
	}
}

func NewDetailedStatusProblem(status int, detail string) Problem {
	p := NewStatusProblem(status)
	p.Detail = detail

	return p
}

func NewErrorProblem(err error, status int) Problem {
	p := NewStatusProblem(status)

	if e, ok := err.(*errors.Error); ok {
		p.Title = e.Message
		p.Code = e.Code
		if len(e.Data) > 0 {
			p.Data = e.Data
		}
		return p
	}

	p.Detail = err.Error()
	return p
}

func (p Problem) SetInstance(instance string) Problem {
	p.Instance = instance
	return p
}
