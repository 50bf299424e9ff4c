package network

const secretRedacted = "*****"

// Secret holds a sensitive string, like the CDN access key or an upload
// signature. It implements fmt.Stringer so the value is redacted when it
// ends up in a log line or a formatted error.
type Secret string

// String implements fmt.Stringer.
func (s Secret) String() string {
	return secretRedacted
}
