// Package highlight turns source code into syntax highlighted HTML.
//
// The work is done by an [Engine].
// [Chroma] highlights in-process with the Chroma library,
// while [Pygmentize] and [PygmentizeFiles] shell out to
// the pygmentize tool that ships with Pygments.
// [Cache] remembers results of another Engine.
//
// Engines report failures as [*EngineError].
package highlight
