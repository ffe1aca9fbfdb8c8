/*
Copyright 2019 Alexander Eldeib.
*/

package stringutil

import (
	"crypto/rand"
	"encoding/base64"
	mrand "math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const lowerBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

const (
	letterIdxBits = 6                    // 6 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // All 1-bits, as many as letterIdxBits
	letterIdxMax  = 63 / letterIdxBits   // # of letter indices fitting in 63 bits
)

// https://github.com/kubernetes-sigs/cluster-api-provider-azure/blob/60b7c6058550ae694935fb03103460a2efa4e332/pkg/cloud/azure/services/virtualmachines/virtualmachines.go#L215
// GenerateRandomBytes returns n cryptographically random bytes, base64 encoded.
func GenerateRandomBytes(n int) (string, error) {
	b := make([]byte, n)
	// err == nil only if we read len(b) bytes.
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// GenerateRandomStringFromAlphabet generates a string of n characters drawn from alphabet.
// Not suitable for secrets.
// https://stackoverflow.com/a/31832326
func GenerateRandomStringFromAlphabet(n int, alphabet string) string {
	src := mrand.NewSource(time.Now().UnixNano())
	sb := strings.Builder{}
	sb.Grow(n)
	// A src.Int63() generates 63 random bits, enough for letterIdxMax characters!
	for i, cache, remain := n-1, src.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = src.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(alphabet) {
			sb.WriteByte(alphabet[idx])
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
	return sb.String()
}

// GenerateLowerCaseAlphaNumeric generates a random string with lowercase alphanumeric characters.
// Azure resource names built from it are valid for every compute resource type.
func GenerateLowerCaseAlphaNumeric(n int) string {
	return GenerateRandomStringFromAlphabet(n, lowerBytes)
}
