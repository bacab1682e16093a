package symbols

// TSJSQuery captures symbol definitions shared by TypeScript, TSX,
// JavaScript and JSX. Arrow functions get their own category so they
// round-trip as kind=arrow_function rather than being folded into
// kind=variable.
const TSJSQuery = `
; Functions
(function_declaration
  name: (identifier) @function.name
) @function.definition

(variable_declarator
  name: (identifier) @function.name
  value: (function_expression)
) @function.definition

; Arrow functions bound to a variable: const f = () => ...
(variable_declarator
  name: (identifier) @arrow_function.name
  value: (arrow_function)
) @arrow_function.definition

; Classes
(class_declaration
  name: (type_identifier) @class.name
) @class.definition

; Methods
(method_definition
  name: (property_identifier) @method.name
) @method.definition

; Plain variable/const bindings (anything not function/arrow above)
(variable_declarator
  name: (identifier) @variable.name
) @variable.definition

; Types
(type_alias_declaration
  name: (type_identifier) @type_alias.name
) @type_alias.definition

(interface_declaration
  name: (type_identifier) @interface.name
) @interface.definition

(enum_declaration
  name: (identifier) @enum.name
) @enum.definition
`
