package comments

// LineBlockQuery matches the `line_comment`/`block_comment` node types
// used by the Rust and Java grammars in place of a single `comment` node.
const LineBlockQuery = `
[
  (line_comment) @comment.node
  (block_comment) @comment.node
]
`
