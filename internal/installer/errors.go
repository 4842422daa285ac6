package installer

import "github.com/m-mizutani/goerr/v2"

// Error tags classify every failure the installer reports. A single error may
// carry more than one tag, e.g. a failed version check is both
// TagVersionResolution and TagNetwork.
var (
	TagNetwork           = goerr.NewTag("network")
	TagVersionResolution = goerr.NewTag("version_resolution")
	TagExtraction        = goerr.NewTag("extraction")
	TagFilesystem        = goerr.NewTag("filesystem")
	TagStrip             = goerr.NewTag("strip")
	TagPrecondition      = goerr.NewTag("precondition")
	TagToolMissing       = goerr.NewTag("tool_missing")
	TagExternalTool      = goerr.NewTag("external_tool")
)

// IsPrecondition reports whether err means the target is not a recognized
// installation root.
func IsPrecondition(err error) bool { return goerr.HasTag(err, TagPrecondition) }

// IsToolMissing reports whether err means a required binary is not installed.
func IsToolMissing(err error) bool { return goerr.HasTag(err, TagToolMissing) }

// IsExternalTool reports whether err comes from a process that exited nonzero.
func IsExternalTool(err error) bool { return goerr.HasTag(err, TagExternalTool) }

// IsNetwork reports whether err comes from an HTTP request.
func IsNetwork(err error) bool { return goerr.HasTag(err, TagNetwork) }

// IsExtraction reports whether err comes from unpacking an archive.
func IsExtraction(err error) bool { return goerr.HasTag(err, TagExtraction) }

// IsFilesystem reports whether err comes from a move, delete or copy.
func IsFilesystem(err error) bool { return goerr.HasTag(err, TagFilesystem) }
