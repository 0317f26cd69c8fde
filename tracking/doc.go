// Package tracking implements the dynamic marker tracking and animation
// engine: ingestion of irregular, possibly-delayed position reports for many
// simultaneously moving entities, and production of smooth render-ready
// positions at a higher effective refresh rate than the update source.
//
// The pieces:
//   - Fix: one timestamped position/kinematics report
//   - TrackEntity: per-marker state (fix history, liveness, trail)
//   - Classify: the pure liveness state machine
//   - PositionAt: interpolation and short-range dead-reckoning
//   - TrailBuffer: bounded, distance-filtered breadcrumb history
//   - Registry: owns the entity set, applies fixes, runs the render tick
//
// A Registry is an explicit instance; callers construct and hold it. ApplyFix
// and Tick are serialized by an internal mutex, so transport callbacks and
// the render loop can call in from different goroutines.
package tracking
