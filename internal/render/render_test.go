package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/ziadkadry99/opspanel/internal/apiclient"
)

func okResult(body string) apiclient.Result {
	return apiclient.Result{OK: true, Status: 200, Raw: body, Data: gjson.Parse(body)}
}

func TestUserCreated(t *testing.T) {
	assert.Equal(t, "✅ User created: x", UserCreated(okResult(`{"success":true,"user_id":"x"}`)))
	assert.Equal(t, "✅ User created: ", UserCreated(okResult(`{"success":true}`)))
}

func TestErrorPrecedence(t *testing.T) {
	tests := []struct {
		name string
		res  apiclient.Result
		want string
	}{
		{
			name: "transport error wins",
			res:  apiclient.Result{Err: "dial tcp: refused", Data: gjson.Parse(`{"message":"ignored"}`)},
			want: "❌ Error: dial tcp: refused",
		},
		{
			name: "envelope message",
			res:  okResult(`{"success":false,"message":"db down"}`),
			want: "❌ Error: db down",
		},
		{
			name: "fallback",
			res:  okResult(`{"success":false}`),
			want: "❌ Error: Unknown error",
		},
		{
			name: "falsy message",
			res:  okResult(`{"success":false,"message":false}`),
			want: "❌ Error: Unknown error",
		},
		{
			name: "empty message",
			res:  okResult(`{"success":false,"message":""}`),
			want: "❌ Error: Unknown error",
		},
		{
			name: "numeric message",
			res:  okResult(`{"success":0,"message":42}`),
			want: "❌ Error: 42",
		},
		{
			name: "invalid json",
			res:  apiclient.Result{Status: 200, Err: apiclient.ErrInvalidJSON},
			want: "❌ Error: Invalid JSON response",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserCreated(tt.res))
		})
	}
}

func TestTrigger(t *testing.T) {
	assert.Equal(t, "✅ Func1 done", Trigger(okResult(`{"success":true,"message":"Func1 done"}`)))

	notOK := okResult(`{"success":true,"message":"late"}`)
	notOK.OK = false
	notOK.Status = 502
	assert.Equal(t, "❌ Error: late", Trigger(notOK))
}

func TestTriggerTruthySuccess(t *testing.T) {
	for _, body := range []string{
		`{"success":"yes","message":"done"}`,
		`{"success":{},"message":"done"}`,
		`{"success":[],"message":"done"}`,
		`{"success":1,"message":"done"}`,
	} {
		assert.Equal(t, "✅ done", Trigger(okResult(body)), body)
	}
	for _, body := range []string{
		`{"success":"","message":"done"}`,
		`{"success":0,"message":"done"}`,
		`{"success":null,"message":"done"}`,
	} {
		assert.Equal(t, "❌ Error: done", Trigger(okResult(body)), body)
	}
}

func TestUserLineFractionalAge(t *testing.T) {
	assert.Equal(t, "Ada Lovelace (age 25.7) - married: false",
		UserLine(apiclient.User{FirstName: "Ada", LastName: "Lovelace", Age: 25.7}))
}

func TestUsers(t *testing.T) {
	res := okResult(`{"success":true,"count":2,"users":[
		{"first_name":"Ada","last_name":"Lovelace","age":36,"marital_status":true},
		{"first_name":"Alan","last_name":"Turing","age":41,"marital_status":false}
	]}`)

	summary, lines := Users(res)

	assert.Equal(t, "✅ Found 2 users", summary)
	assert.Equal(t, []string{
		"Ada Lovelace (age 36) - married: true",
		"Alan Turing (age 41) - married: false",
	}, lines)
	assert.Equal(t, "✅ Found 2 users\nAda Lovelace (age 36) - married: true\nAlan Turing (age 41) - married: false", UsersText(res))
}

func TestUsersMissingCount(t *testing.T) {
	summary, lines := Users(okResult(`{"success":true}`))
	assert.Equal(t, "✅ Found 0 users", summary)
	assert.Empty(t, lines)
}

func TestUsersFailure(t *testing.T) {
	summary, lines := Users(apiclient.Result{Err: apiclient.ErrInvalidJSON})
	assert.Equal(t, "❌ Error: Invalid JSON response", summary)
	assert.Nil(t, lines)
}

func TestJSON(t *testing.T) {
	assert.Equal(t, "{\n  \"status\": \"ok\"\n}", JSON(okResult(`{"status":"ok"}`)))
	assert.Equal(t, "{}", JSON(okResult("")))
	assert.Equal(t, "Error: Server responded with 500: boom",
		JSON(apiclient.Result{Status: 500, Err: "Server responded with 500: boom"}))
	assert.Equal(t, "Error: Invalid JSON response", JSON(apiclient.Result{Err: apiclient.ErrInvalidJSON}))
}

func TestJSONNormalizesNumbersAndEscapes(t *testing.T) {
	got := JSON(okResult(`{"count":1.0,"name":"caf\u00e9","big":1e2,"tag":"<b>","none":null}`))
	want := "{\n  \"count\": 1,\n  \"name\": \"café\",\n  \"big\": 100,\n  \"tag\": \"<b>\",\n  \"none\": null\n}"
	assert.Equal(t, want, got)
}

func TestMetrics(t *testing.T) {
	assert.Equal(t, "a 1\nb 2", Metrics(apiclient.Result{OK: true, Raw: "a 1\nb 2\n"}))
	assert.Equal(t, "Error: refused", Metrics(apiclient.Result{Err: "refused"}))
}

func TestLinks(t *testing.T) {
	got := Links([]apiclient.Link{
		{Name: "health", URL: "http://h/health"},
		{Name: "metrics", URL: "http://h/metrics"},
	})
	assert.Equal(t, "health   http://h/health\nmetrics  http://h/metrics", got)
}
