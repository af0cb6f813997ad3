// helpers/access_code.go
package helper

import (
	"crypto/rand"
	"fmt"
)

// Codes are generated uppercase only and compared case-sensitively.
const accessCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const AccessCodeLength = 8

// GenerateAccessCode mints the public exam code stamped at publish time:
// 8 uppercase alphanumeric characters from crypto/rand. Codes are not
// checked for collision across exams; access always pairs the code with
// the exam id.
func GenerateAccessCode() (string, error) {
	buf := make([]byte, AccessCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("access code entropy: %w", err)
	}
	for i, b := range buf {
		buf[i] = accessCodeCharset[int(b)%len(accessCodeCharset)]
	}
	return string(buf), nil
}
