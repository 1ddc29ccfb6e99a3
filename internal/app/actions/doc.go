// Package actions declares the journal's write operations as straitjacket
// actions: named inputs, a structural validation pass, and one Invoke body
// per side effect. Collaborators arrive as ports so bodies stay testable
// with fakes.
//
// Validate methods check only what is knowable without effects. Checks that
// need store reads (does the entry exist, is it already published) belong
// to Invoke bodies and surface as domain sentinel errors.
package actions
