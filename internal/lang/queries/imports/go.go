package imports

// GoQuery captures import specs. Grouped `import (...)` blocks are
// already flattened into individual import_spec nodes by
// tree-sitter-go, so no further expansion is needed in the extractor
// beyond reading the optional alias/dot/blank-identifier name field.
const GoQuery = `
(import_spec) @import.spec
`
