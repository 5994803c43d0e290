package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/opspanel/internal/apiclient"
	"github.com/ziadkadry99/opspanel/internal/forms"
	"github.com/ziadkadry99/opspanel/internal/render"
)

// respond records the interaction and wraps its rendered text as a tool
// result; failed interactions become tool errors.
func (s *Server) respond(ctx context.Context, res apiclient.Result, text string, ok bool) *mcp.CallToolResult {
	s.recorder.Record(ctx, res, text, ok)
	if !ok {
		return mcp.NewToolResultError(text)
	}
	return mcp.NewToolResultText(text)
}

func (s *Server) handleHealthCheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := s.client.Health(ctx)
	return s.respond(ctx, res, render.JSON(res), !res.Failed()), nil
}

func (s *Server) handleSubmitItem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	item, err := forms.ParseItem(request.GetString("name", ""), request.GetString("value", ""))
	if err != nil {
		return mcp.NewToolResultError(render.InvalidItem), nil
	}
	res := s.client.SubmitItem(ctx, item)
	return s.respond(ctx, res, render.JSON(res), !res.Failed()), nil
}

func (s *Server) handleCreateUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	married := "false"
	if request.GetBool("married", false) {
		married = "true"
	}
	user := forms.ParseUser(
		request.GetString("first_name", ""),
		request.GetString("last_name", ""),
		request.GetString("age", ""),
		married,
	)
	res := s.client.CreateUser(ctx, user)
	return s.respond(ctx, res, render.UserCreated(res), res.Accepted()), nil
}

func (s *Server) handleListUsers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := s.client.ListUsers(ctx)
	return s.respond(ctx, res, render.UsersText(res), res.Accepted()), nil
}

func (s *Server) handleSetKey(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kv, err := forms.ParseKeyValue(request.GetString("key", ""), request.GetString("value", ""))
	if err != nil {
		return mcp.NewToolResultError(render.InvalidKeyValue), nil
	}
	res := s.client.SetKey(ctx, kv)
	return s.respond(ctx, res, render.Trigger(res), res.Accepted()), nil
}

func (s *Server) handleTriggerFunc1(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := s.client.TriggerFunc1(ctx)
	return s.respond(ctx, res, render.Trigger(res), res.Accepted()), nil
}

func (s *Server) handleTriggerFunc2(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := s.client.TriggerFunc2(ctx)
	return s.respond(ctx, res, render.Trigger(res), res.Accepted()), nil
}

func (s *Server) handleGetMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := s.client.Metrics(ctx)
	return s.respond(ctx, res, render.Metrics(res), !res.Failed()), nil
}
