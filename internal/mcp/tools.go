package mcp

import "github.com/mark3labs/mcp-go/mcp"

var healthCheckTool = mcp.NewTool("health_check",
	mcp.WithDescription("Check whether the API is up. Returns the health response as indented JSON."),
)

var submitItemTool = mcp.NewTool("submit_item",
	mcp.WithDescription("Submit a named item with an integer value. Returns the stored item as indented JSON."),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("Item name; surrounding whitespace is trimmed"),
	),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("Integer value; only the leading integer is used"),
	),
)

var createUserTool = mcp.NewTool("create_user",
	mcp.WithDescription("Create a user and return its id."),
	mcp.WithString("first_name",
		mcp.Required(),
		mcp.Description("First name"),
	),
	mcp.WithString("last_name",
		mcp.Required(),
		mcp.Description("Last name"),
	),
	mcp.WithString("age",
		mcp.Description("Age in years; blank means 0"),
	),
	mcp.WithBoolean("married",
		mcp.Description("Marital status (default false)"),
	),
)

var listUsersTool = mcp.NewTool("list_users",
	mcp.WithDescription("List every stored user, one per line."),
)

var setKeyTool = mcp.NewTool("set_key",
	mcp.WithDescription("Store a key/value pair."),
	mcp.WithString("key",
		mcp.Required(),
		mcp.Description("Key to store"),
	),
	mcp.WithString("value",
		mcp.Description("Value to store"),
	),
)

var triggerFunc1Tool = mcp.NewTool("trigger_func1",
	mcp.WithDescription("Fire the func1 trigger endpoint and report its message."),
)

var triggerFunc2Tool = mcp.NewTool("trigger_func2",
	mcp.WithDescription("Fire the func2 trigger endpoint and report its message."),
)

var getMetricsTool = mcp.NewTool("get_metrics",
	mcp.WithDescription("Fetch the API's metrics exposition as plain text."),
)
