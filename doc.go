// Package paramstyle encodes values into the wire representations defined by
// the OpenAPI 3 parameter serialization styles.
//
// A value is first described as a [Value]: a scalar, an ordered sequence or an
// ordered mapping. The style encoders ([Simple], [Form], [DeepObject]) and the
// [DeepForm] combiner then turn that value into either a keyless delimited
// string (simple) or an ordered list of percent-encoded [Pair]s ready to be
// joined into a query string or an application/x-www-form-urlencoded body.
//
// Every literal token passes through a single [Escaper]. The default, [Escape],
// percent-encodes everything outside the RFC 3986 unreserved set. Notably a
// literal "+" is always written as "%2B" and a space as "%20", never "+", so
// that the output is unambiguous for both query and form decoders.
//
// Encoding is pure: the same parameter and value always produce the same
// output, and all functions are safe for concurrent use.
package paramstyle
