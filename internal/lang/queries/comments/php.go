package comments

// PHPQuery matches `comment` nodes, which cover `//`, `#`, and `/* */`
// forms alike in tree-sitter-php; the extractor classifies by delimiter
// text.
const PHPQuery = `
(comment) @comment.node
`
