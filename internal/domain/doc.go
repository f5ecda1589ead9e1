// Package domain contains the core entities and errors for tasker.
//
// This package is the innermost layer. It has no dependencies on the file
// system, logging or the command line and holds only the rules for an
// ordered task list.
//
// # Entities
//
//   - [Task]: a description and a completion flag
//   - [List]: an ordered sequence of tasks addressed by zero-based index
//
// # Addressing
//
// Tasks have no identity beyond their position. Every [List] operation takes
// an index into the sequence as it is at call time; inserting or deleting
// shifts the indices of the tasks that follow.
//
// List operations never modify their receiver. They return a new List so the
// caller can persist it before making it current.
package domain
