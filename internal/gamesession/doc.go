// Package gamesession exchanges an identity token for a game session and lists
// the accounts that session can play.
//
// Both calls are plain request/response; nothing is cached or retried. Any
// unexpected status or payload is reported as an *ExchangeError.
package gamesession
