package symbols

// PythonQuery captures Python symbol definitions. Whether a
// function_definition is a free function or a method (syntactically
// inside a class, not a nested function) and whether a definition is
// wrapped in decorated_definition are both resolved by the extractor,
// which also collapses the outer/inner match pair for decorators into a
// single symbol row per the decorated-definition contract.
const PythonQuery = `
(function_definition
  name: (identifier) @function.name
) @function.definition

(class_definition
  name: (identifier) @class.name
) @class.definition

(decorated_definition
  definition: (function_definition
    name: (identifier) @function.name)
) @function.definition

(decorated_definition
  definition: (class_definition
    name: (identifier) @class.name)
) @class.definition

(expression_statement
  (assignment
    left: (identifier) @variable.name)
) @variable.definition
`
