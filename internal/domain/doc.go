// Package domain contains the core entities of ycbvideo.
//
// It has no dependencies on infrastructure (file system, decoding,
// logging) and holds only values and the errors of descriptor resolution.
//
// # Entities
//
//   - [Descriptor]: a resolved (sequence, frame) pair
//   - [Frame]: a materialized frame with its images, boxes and metadata
//   - [Box]: one labelled bounding box
//   - [FrameSets]: the complete and incomplete frames of one sequence
package domain
