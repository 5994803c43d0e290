package apiclient

import (
	"time"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is the text reported when a response body does not parse.
const ErrInvalidJSON = "Invalid JSON response"

// Result is the outcome of one interaction with the API. Failures never
// surface as Go errors; they are carried as text in Err.
type Result struct {
	Endpoint string
	Method   string
	URL      string

	// OK is true for a 2xx status with a parseable body.
	OK bool
	// Status is the HTTP status code, or 0 when no response arrived.
	Status int
	// Data is the parsed body. An empty body parses as {}.
	Data gjson.Result
	// Raw is the body text exactly as received.
	Raw string
	// Err describes the failure, if any.
	Err string

	Duration time.Duration
}

// Failed reports whether the interaction produced an error message.
func (r Result) Failed() bool { return r.Err != "" }

// Success reports the truthiness of the envelope's success field.
func (r Result) Success() bool {
	return Truthy(r.Data.Get("success"))
}

// Message returns the envelope's message field as text, or "" when it is
// absent or falsy.
func (r Result) Message() string {
	msg := r.Data.Get("message")
	if !Truthy(msg) {
		return ""
	}
	return Text(msg)
}

// UserID returns the envelope's user_id field, or "" when absent.
func (r Result) UserID() string {
	return Text(r.Data.Get("user_id"))
}

// Count returns the envelope's count field, or 0 when absent.
func (r Result) Count() int64 {
	return r.Data.Get("count").Int()
}

// Users decodes the envelope's users array. Non-object entries are skipped.
func (r Result) Users() []User {
	var users []User
	r.Data.Get("users").ForEach(func(_, u gjson.Result) bool {
		if !u.IsObject() {
			return true
		}
		users = append(users, User{
			UserID:        u.Get("user_id").String(),
			FirstName:     u.Get("first_name").String(),
			LastName:      u.Get("last_name").String(),
			Age:           u.Get("age").Float(),
			MaritalStatus: u.Get("marital_status").Bool(),
		})
		return true
	})
	return users
}

// Accepted reports whether the API answered and the envelope signals success.
func (r Result) Accepted() bool {
	return r.OK && r.Success()
}
