package imports

// CQuery captures #include directives. Whether the path used angle
// brackets (external) or quotes (internal) is read off the child node's
// grammar name (system_lib_string vs. string_literal) in the extractor.
const CQuery = `
(preproc_include) @include.directive
`
