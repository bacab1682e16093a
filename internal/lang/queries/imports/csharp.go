package imports

// CSharpQuery captures `using` directives; the extractor reads an alias
// (name_equals child) off the directive's children. Static and plain
// forms both yield kind `using`.
const CSharpQuery = `
(using_directive) @using.directive
`
