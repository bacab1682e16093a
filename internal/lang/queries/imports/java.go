package imports

// JavaQuery captures import declarations, including `import static`.
const JavaQuery = `
(import_declaration) @import.declaration
`
