// Package account implements the user domain model: accounts, the closed
// role enum, and the Actor identity passed to every operation that needs to
// know who is acting.
//
// Roles arrive at the boundary as loose strings ("manager", "kitchen",
// "staff" all meant kitchen duty in older backends); RoleFromString resolves
// them to the canonical enum exactly once, so the rest of the system only
// handles Role values.
package account
