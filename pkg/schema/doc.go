// Package schema builds form controllers from declarative YAML definitions,
// so form layouts and their validation rules can live in configuration
// instead of code.
//
// A definition lists fields with initial values and typed rule entries:
//
//	fields:
//	  - name: email
//	    initial: ""
//	    rules:
//	      - type: required
//	      - type: email
//	  - name: age
//	    rules:
//	      - type: between
//	        min: 18
//	        max: 130
//	        message: "Must be an adult age"
//
// Parse validates the document shape; Build resolves every rule entry against
// the built-in rule set and returns a ready form.Form. Unknown rule types and
// missing parameters are reported with sentinel errors, so configuration
// mistakes surface at startup rather than at validation time.
package schema
