// Package praticagem collects scheduled vessel-movement data for the port
// of Itajaí-SC by scraping the pilotage association's public site and
// exposing the extracted records over a small REST API.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, slog/).
package praticagem
