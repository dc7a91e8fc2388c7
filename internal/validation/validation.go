// Package validation checks incoming form submissions against named rule
// sets and shapes failures into the API's error contract.
//
// Rule sets are static tables of field rules. Evaluate applies one table to
// a raw record and collects every failure in declaration order; Respond
// turns a failed outcome into a 400 response. The individual checks are
// delegated to go-playground/validator.
package validation
