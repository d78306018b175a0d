package common

// WipeByteArray zeroes b in place. Used on password buffers read from the
// terminal once they have been handed to the backend.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
