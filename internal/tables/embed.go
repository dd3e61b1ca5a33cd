// Package tables embeds the default rule tables shipped with the binary:
// the issue taxonomy and the per-document-type profiles. Deployments
// with newer legal content point the CLI at an external tables directory
// instead.
package tables

import "embed"

// FS contains the default taxonomy and profile tables embedded at
// compile time.
//
//go:embed taxonomy.toml profiles/*.toml
var FS embed.FS
