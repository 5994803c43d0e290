// Package render produces the text a result element shows for each outcome.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/ziadkadry99/opspanel/internal/apiclient"
)

// Pending labels shown while a request is outstanding.
const (
	PendingUser   = "Sending..."
	PendingFunc1  = "Triggering Func1..."
	PendingFunc2  = "Triggering Func2..."
	PendingUsers  = "Loading users..."
	PendingHealth = "Checking health..."
	PendingItem   = "Submitting item..."
	PendingSet    = "Storing key..."
	PendingMetric = "Fetching metrics..."
)

// InvalidItem is shown when the item form fails validation.
const InvalidItem = "❌ Please enter a valid name and number"

// InvalidKeyValue is shown when the key store form fails validation.
const InvalidKeyValue = "❌ Please enter a key"

// Error formats the failure line shared by envelope endpoints: the transport
// or parse error first, then the envelope message, then a generic fallback.
func Error(res apiclient.Result) string {
	msg := res.Err
	if msg == "" {
		msg = res.Message()
	}
	if msg == "" {
		msg = "Unknown error"
	}
	return "❌ Error: " + msg
}

// UserCreated renders the outcome of a user creation.
func UserCreated(res apiclient.Result) string {
	if !res.Accepted() {
		return Error(res)
	}
	return "✅ User created: " + res.UserID()
}

// Trigger renders the outcome of a func1/func2 trigger or a key store.
func Trigger(res apiclient.Result) string {
	if !res.Accepted() {
		return Error(res)
	}
	return "✅ " + res.Message()
}

// UserLine renders one user of a listing.
func UserLine(u apiclient.User) string {
	return fmt.Sprintf("%s %s (age %s) - married: %t",
		u.FirstName, u.LastName, apiclient.FormatNumber(u.Age), u.MaritalStatus)
}

// Users renders a user listing: a summary line, then one line per user.
func Users(res apiclient.Result) (summary string, lines []string) {
	if !res.Accepted() {
		return Error(res), nil
	}
	for _, u := range res.Users() {
		lines = append(lines, UserLine(u))
	}
	return fmt.Sprintf("✅ Found %d users", res.Count()), lines
}

// UsersText joins a listing into a single block of text.
func UsersText(res apiclient.Result) string {
	summary, lines := Users(res)
	if len(lines) == 0 {
		return summary
	}
	return summary + "\n" + strings.Join(lines, "\n")
}

// JSON renders a parsed body with two-space indentation, or the failure as
// "Error: <message>". Used for the health check and item submission.
func JSON(res apiclient.Result) string {
	if res.Failed() {
		return "Error: " + res.Err
	}
	var buf bytes.Buffer
	if res.Data.Exists() {
		writeCanonical(&buf, res.Data)
	} else {
		buf.WriteString("{}")
	}
	// Width 0 keeps every array element on its own line.
	out := pretty.PrettyOptions(buf.Bytes(), &pretty.Options{
		Width:    0,
		Prefix:   "",
		Indent:   "  ",
		SortKeys: false,
	})
	return strings.TrimRight(string(out), "\n")
}

// writeCanonical re-encodes v compactly with numbers in their shortest form
// and strings unescaped where JSON allows. Key order is preserved.
func writeCanonical(buf *bytes.Buffer, v gjson.Result) {
	switch {
	case v.IsObject():
		buf.WriteByte('{')
		first := true
		v.ForEach(func(key, value gjson.Result) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			writeString(buf, key.Str)
			buf.WriteByte(':')
			writeCanonical(buf, value)
			return true
		})
		buf.WriteByte('}')
	case v.IsArray():
		buf.WriteByte('[')
		for i, e := range v.Array() {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeCanonical(buf, e)
		}
		buf.WriteByte(']')
	case v.Type == gjson.String:
		writeString(buf, v.Str)
	case v.Type == gjson.Number:
		buf.WriteString(apiclient.FormatNumber(v.Num))
	case v.Type == gjson.True:
		buf.WriteString("true")
	case v.Type == gjson.False:
		buf.WriteString("false")
	default:
		buf.WriteString("null")
	}
}

func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	// Encode terminates each value with a newline.
	buf.Truncate(buf.Len() - 1)
}

// Metrics renders the metrics exposition text or its failure.
func Metrics(res apiclient.Result) string {
	if res.Failed() {
		return "Error: " + res.Err
	}
	return strings.TrimRight(res.Raw, "\n")
}

// Links renders one "name: url" line per link.
func Links(links []apiclient.Link) string {
	var sb strings.Builder
	for i, l := range links {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%-8s %s", l.Name, l.URL)
	}
	return sb.String()
}
