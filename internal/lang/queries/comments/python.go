package comments

// PythonQuery matches `comment` nodes plus top-of-block string
// expression statements, which the extractor further filters down to
// actual docstrings (first statement of a module/class/function body).
const PythonQuery = `
(comment) @comment.node

(expression_statement
  (string) @comment.docstring_candidate
)
`
