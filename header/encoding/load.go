// Package encoding provides a replacement for field.CharsetDecoder that loads
// all the encodings provided with:
//
// * golang.org/x/text/encoding/ianaindex
//
// This will make the size of your compiled binaries considerably larger. But it
// will also give your code the ability to decode pretty much any character set
// it might encounter in encoded words and extended parameters in the wild wild
// world of email. Import it for side effects:
//
//	import _ "github.com/zostay/go-email-header/header/encoding"
package encoding

import (
	"fmt"

	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/zostay/go-email-header/header/field"
)

func init() {
	field.CharsetDecoder = CharsetDecoder
}

// CharsetDecoder provides a replacement decoder for field.CharsetDecoder, which
// can decode a wide range of rare and unusual character sets. Anything the
// IANA index does not know about is handed to field.DefaultCharsetDecoder.
func CharsetDecoder(charset string, b []byte) (string, error) {
	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return field.DefaultCharsetDecoder(charset, b)
	}

	if e == nil {
		return "", fmt.Errorf("no encoding found for charset %q", charset)
	}

	eb, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}

	return string(eb), nil
}
