// Package loader discovers configuration files under a configuration root,
// picks the environment subdirectory requested by the settings, and decodes
// every file into one [models.Aggregate] keyed by file base name.
//
// Layout consumed:
//
//	<root>/<name>.<ext>        used when no environment is set
//	<root>/<env>/<name>.<ext>  used when an environment is set
//
// Every call to [Loader.Load] scans the filesystem again. Nothing is cached;
// callers that want a single snapshot keep the returned aggregate.
// The loader never exits the process: failures are returned as errors
// matching [ErrConfigRootMissing] or [ErrUnknownEnvironment], or as a
// [*DecodeError] or [*DuplicateConfigError].
package loader
