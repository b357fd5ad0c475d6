// Package ports defines the interfaces that connect the resolution core to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [Inventory]: lists sequences and the frame sets of a sequence
//   - [FrameLoader]: materializes one frame
//   - [Logger]: structured logging abstraction
//
// The application layer (internal/app) depends only on these interfaces.
// pkg/dataset implements them over the on-disk dataset layout; tests use
// in-memory implementations.
package ports
