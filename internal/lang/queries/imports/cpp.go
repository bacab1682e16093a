package imports

// CppQuery reuses the C #include forms; C++20 modules (import "m";) are
// out of scope for this grammar's common usage and not pattern-matched.
const CppQuery = `
(preproc_include) @include.directive
`
