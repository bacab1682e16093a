package imports

// PythonQuery captures `import` and `from ... import` statements whole;
// dotted module paths, aliasing, and grouped `from m import a, b as c`
// expansion are all handled by the extractor walking the statement's
// children.
const PythonQuery = `
(import_statement) @import.statement

(import_from_statement) @from.statement
`
