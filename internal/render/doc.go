// Package render turns code blocks embedded in documents
// into syntax highlighted HTML fragments.
//
// A [Renderer] strips the margin of a block,
// highlights it with a [highlight.Engine],
// and wraps the result in the HTML scaffolding
// expected by the site's stylesheets.
// Blocks are rendered on their own with [Renderer.RenderSingle],
// or as two snippets side by side with [Renderer.RenderCompare].
package render
