// Package ports defines the interfaces that connect the application layer
// to infrastructure adapters.
//
// # Port Interfaces
//
//   - [TaskRepository]: loads and saves the whole task list
//
// The application layer (internal/app) depends only on these interfaces.
// The file system adapter (internal/adapters/fs) implements them.
package ports
