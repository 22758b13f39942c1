package chat

// Status marks where a message sits in its delivery lifecycle. The zero
// value means no status has been set yet.
type Status string

const (
	StatusDelivered Status = "delivered"
	StatusError     Status = "error"
	StatusRead      Status = "read"
	StatusSending   Status = "sending"
)

// ParseStatus resolves a raw status name to its Status value. It fails with
// an UnknownStatusError on anything outside the four recognized names; the
// empty string is not a valid name (absent status is expressed by leaving
// the field unset, or null on the wire).
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDelivered, StatusError, StatusRead, StatusSending:
		return Status(s), nil
	default:
		return "", &UnknownStatusError{Value: s}
	}
}
