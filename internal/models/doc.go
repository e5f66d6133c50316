// Package models defines the core domain models for ridecrew.
//
// # Models
//
//   - User: one of the fixed, seeded riders. Users are never edited.
//   - Ride: a scheduled group outing with a roster, a lifecycle status,
//     ratings and post-ride stats.
//   - Message: one entry in a ride's append-only group chat.
//   - Destination: a resolved place a ride heads to.
//
// # Design Principles
//
//  1. **Values, not pointers**: rides are passed by value through the
//     lifecycle package so a failed operation never leaves a half-applied
//     change behind.
//  2. **Explicit optionals**: fields that only exist in some states (emergency
//     contact, stats) are pointers that are nil when absent.
//  3. **IDs for relationships**: rides reference users by ID string.
package models
