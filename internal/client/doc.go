// Package client implements the command line client of the authentication
// API: one command per authentication operation, sent through
// [adapter.AuthClient].
//
// The session token printed by "login" and "reset-password" is passed to
// later invocations with --token or the FORMS_AUTH_TOKEN variable.
package client
