// Package main Touchpoint API
//
// Touch-sequence scheduling and cycle-lifecycle engine for relationship
// nurturing: presets, subscriptions, touches and their history.
//
// Schemes: http, https
// Host: localhost:8080
// BasePath: /api/v1
// Version: 0.1.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package main
