// Package config provides configuration management for jxlogin.
//
// Configuration is resolved in three layers, later layers winning:
//
//  1. Built-in defaults (GetDefaultConfig), which target the Jagex identity
//     provider and game-session API.
//  2. config.yaml in the configuration directory, ~/.config/jxlogin by default
//     or the directory given with --config-path. A missing file is not an error.
//  3. Environment variables prefixed with JXLOGIN_, for example
//     JXLOGIN_LISTEN_PORT=8080 or JXLOGIN_CALLBACK_TIMEOUT=2m.
//
// Command-line flags are applied on top by the cmd package.
//
// # Example config.yaml
//
//	listen:
//	  host: localhost
//	  port: 80
//	callbackTimeout: 5m
//	output: table
//	provider:
//	  authEndpoint: https://account.jagex.com/oauth2/auth
//	gameSession:
//	  timeout: 30s
package config
