// Package rulefile reads rule specifications and data payloads from JSON and
// YAML documents.
//
// A rules document is a mapping from field pattern to a list of rule
// descriptors, in the same shape as validator.Rules:
//
//	email: [required, email]
//	age: [nullable, integer, [between, 18, 130]]
//	items.*.sku: [required, [regex, "/^[A-Z]{2}-\\d+$/"]]
//	vat:
//	  - [when, [country, "=", HR], [[required, vat_eu]]]
//
// Numbers are decoded without loss: JSON integers stay integers and YAML
// scalars keep their resolved type. All decoded values are converted to the
// validator data model.
package rulefile
