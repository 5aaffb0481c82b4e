package streamerbot

import (
	"crypto/sha256"
	"encoding/base64"
)

// AuthHash answers a Streamer.bot challenge:
// Base64(SHA256(Base64(SHA256(password + salt)) + challenge))
func AuthHash(password, salt, challenge string) string {
	secret := sha256.Sum256([]byte(password + salt))
	secretB64 := base64.StdEncoding.EncodeToString(secret[:])

	sum := sha256.Sum256([]byte(secretB64 + challenge))
	return base64.StdEncoding.EncodeToString(sum[:])
}
