// Package decoder turns raw configuration file contents into
// [models.Document] values.
//
// Decoders are selected by file extension through a [Registry]. [Default]
// returns a registry that understands JSON (".json") and YAML (".yaml",
// ".yml").
package decoder
