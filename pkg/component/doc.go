// Package component implements the prompt-component definition and render
// engine: typed field schemas with single-chain inheritance, swappable
// class-reference slots, per-use instances and the pre-hook → collect →
// substitute → post-hook → engine render pipeline.
//
// Definitions are validated once, when Define resolves their schema, and the
// resolved schema is cached for the lifetime of the process. Instances are
// created per render request and treated as immutable outside the pre-render
// hook window.
package component
