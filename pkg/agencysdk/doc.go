// Package agencysdk is the typed Go client for the AgencyRoom API, along
// with the request/response types the server itself renders. Keeping both
// sides on one set of structs means the wire contract lives in exactly one
// place.
package agencysdk
