// Package formatter provides response wrapping and serialization for marker
// snapshot responses.
//
// This package is organized into:
// - wrapper.go: Response wrapping logic (envelope, timestamps)
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
//
// XML serialization is done manually for precise control over output format.
package formatter
