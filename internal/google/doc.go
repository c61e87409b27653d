// Package google provides OAuth2 authentication and token management for the
// Google Calendar API.
//
// Two credential sources are supported: per-account token files on disk
// (created by the auth command) and service-account credentials from the
// environment (for headless deployments). The TokenProvider interface allows
// different token sources to be plugged in.
package google
