// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/category) and field
// rules in domain/validator. This root package holds sentinel errors, the
// validation error type, and domain-level interfaces (Action, WriteStager)
// that the unit of work builds on.
package domain
