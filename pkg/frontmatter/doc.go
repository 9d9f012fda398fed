// Package frontmatter rewrites the "---"-delimited header of Claude markdown
// files (agents, commands, skills) into the shape OpenCode expects.
//
// The rewrite is deliberately line-based rather than a YAML round trip: every
// header line that is not one of the recognized keys is emitted exactly as it
// was written, and the body after the closing delimiter is preserved
// byte-for-byte.
//
// # Splitting
//
// [Split] cuts a document on the first two occurrences of [Delimiter]. A
// document with fewer than two delimiters, or with text before the first
// one, has no header region:
//
//	doc, ok := frontmatter.Split(content)
//	if !ok {
//		// copy the file verbatim
//	}
//
// # Rewriting
//
// [Transform] applies the header rules:
//
//	tools: read, edit      ->  tools:
//	                             read: true
//	                             edit: true
//	color: blue            ->  color: '#0000ff'
//	model: sonnet          ->  (dropped)
//	mode: primary          ->  mode: primary
//
// When [Options.Agent] is set and no mode line exists, "mode: subagent" is
// appended. Running Transform on its own output is a no-op.
//
// # Verification
//
// [Parse] decodes a header as YAML. The migration uses it after writing a
// file to warn about headers OpenCode will not be able to load.
package frontmatter
