// Package param provides a tool for dealing with parameterized headers. These
// headers include the Content-type and Content-disposition header. Values are
// read with the lenient parameter grammar, so RFC 2231 continuations and
// charset-tagged values are joined and decoded, and comments are skipped. In
// addition, it provides some helper methods for breaking down the MIME types
// that get set in the Content-type header.
package param
