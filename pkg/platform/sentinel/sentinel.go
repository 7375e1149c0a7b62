package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and collaborator clients
// return these (optionally wrapped) so services can translate them into domain
// errors or business verdicts.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist (booking reference, case ID)
// - ErrConflict: write collided with an existing entity
// - ErrUnavailable: collaborator or resource temporarily unreachable
//
// For input validation use pkg/domain-errors directly. A booking lookup that
// returns ErrNotFound is a business fact (the "not found in system" verdict);
// one that returns ErrUnavailable must never be recorded as a verdict.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
