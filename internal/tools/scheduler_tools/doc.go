// Package scheduler_tools provides MCP tools for calendar availability and
// scheduling: finding free slots, checking a proposed time, resolving
// events by keyword, listing a schedule, and creating events.
//
// All tools accept an optional "account" argument for multi-account use
// and report outcomes as conversational text suitable for a voice or chat
// agent to relay verbatim. Engine faults never cross the protocol boundary
// raw; every failure becomes an MCP error result with a describable reason.
package scheduler_tools
