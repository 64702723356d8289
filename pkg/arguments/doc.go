// Package arguments decodes the argument list of a directive invocation.
//
// A raw argument string is split on top-level commas into a bounded number
// of fields. Commas inside quotes or inside {...}, [...] and (...) never
// split, and when the field budget runs out the rest of the string is kept
// on the final field. Each trimmed field then decodes to one of:
//
//   - a quoted string ('...' or "..."), quotes stripped, no escapes;
//   - a structured literal {...}, parsed as an HCL object constructor
//     with no variables or functions in scope;
//   - raw text, which callers treat as an identifier.
package arguments
