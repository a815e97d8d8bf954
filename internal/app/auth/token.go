package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/solacehq/solace-api/internal/domain"
)

// tokenTTL bounds how long a minted token stays valid.
const tokenTTL = 24 * time.Hour

// Token format: base64url("{userID}:{issueMillis}:{hex(hmac-sha256)}").
// The earlier app shipped the first two fields unsigned; the signature was
// added so possession of a user id is no longer enough to mint a session.

func (s *Service) mintToken(userID domain.UserID) string {
	issued := strconv.FormatInt(s.now().UnixMilli(), 10)
	payload := string(userID) + ":" + issued
	return base64.URLEncoding.EncodeToString([]byte(payload + ":" + s.sign(payload)))
}

func (s *Service) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// verifyToken checks framing, signature, and age. Any defect yields
// ErrUnauthorized; callers must not leak which check failed.
func (s *Service) verifyToken(token string) (domain.UserID, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", domain.ErrUnauthorized
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 || parts[0] == "" {
		return "", domain.ErrUnauthorized
	}

	payload := parts[0] + ":" + parts[1]
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[2])) {
		return "", domain.ErrUnauthorized
	}

	issuedMillis, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", domain.ErrUnauthorized
	}

	age := s.now().Sub(time.UnixMilli(issuedMillis))
	if age < 0 || age > tokenTTL {
		return "", domain.ErrUnauthorized
	}

	return domain.UserID(parts[0]), nil
}

// TokenPreview returns a loggable fingerprint of a token, never the token
// itself.
func TokenPreview(token string) string {
	if len(token) <= 8 {
		return "token:short"
	}
	return fmt.Sprintf("token:%s…", token[:8])
}
