package encode

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Checksum binds value to key, used to tie a token id to a session id.
func Checksum(key, value string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}
