// Package buildkeep archives build artifacts out of a workspace and enforces
// retention over past builds.
//
// The root package holds the core build model (Outcome, Build, Result), the
// Archiver that copies matched files into a build's artifact directory, and
// flowgraph nodes for running archiving as part of a pipeline.
//
// Subpackages by domain:
//
//   - glob: Ant-style pattern splitting, matching, and recursive copy
//   - manifest: artifact fingerprinting with BLAKE2b digests
//   - config: YAML configuration with environment overrides
//   - notify: archive event notifications (log, webhook, Slack, GitHub, GitLab)
//   - http: retrying HTTP client used by the notifiers
//   - testutil: test fixtures and a recording listener
//
// # Quick Start
//
//	spec := buildkeep.ArchiveSpec{
//	    Include:    "dist/**/*.tar.gz",
//	    LatestOnly: true,
//	}
//	archiver := buildkeep.NewArchiver(spec)
//
//	listener := buildkeep.NewSlogListener(nil)
//	archiver.PreBuild(history, listener)
//	archiver.Archive(build, listener)
//
// See individual package documentation for detailed usage.
package buildkeep
