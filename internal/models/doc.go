// Package models defines the core domain models for the MVP tracker.
//
// # Entities
//
//   - UseCase: a unit of planned work, assigned to a Phase and an MVP Release
//   - Phase: a stage of delivery that belongs to a Release
//   - Release: a named milestone with a target date
//   - InviteCode / RSVP: single-use codes and the attendance answers given with them
//   - UserProfile / UserRole: per-identity display name and access level
//   - AppConfig: the singleton record holding the release-mode flag
//
// # Design Principles
//
//  1. Relationships are identifier strings, never pointers. A UseCase names its
//     Phase and Release by ID and the store never embeds one record in another.
//  2. Status-like fields are closed enumerations. Each one is an int type with a
//     fixed constant set, so switches over them can be checked for exhaustiveness
//     and the declared order doubles as the sort order.
//  3. Timestamps are int64 nanoseconds since the Unix epoch.
//  4. Deletes never cascade. A UseCase may outlive the Phase it references.
package models
