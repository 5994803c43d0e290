package apiclient

// Item is the body of an item submission.
type Item struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// UserRequest is the body of a user creation. A nil Age is sent as null.
type UserRequest struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Age           *float64 `json:"age"`
	MaritalStatus bool     `json:"marital_status"`
}

// KeyValue is the body of a key store request.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// User is one entry of a user listing.
type User struct {
	UserID        string
	FirstName     string
	LastName      string
	Age           float64
	MaritalStatus bool
}

// Link pairs a logical endpoint name with its absolute URL.
type Link struct {
	Name string
	URL  string
}
