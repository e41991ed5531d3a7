// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (materials, coefficient records, calculation
// requests and results) and contracts (stores, services, remote client) only.
package domain
