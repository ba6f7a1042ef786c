package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cedbrasil/enrolld/pkg/apperror"
	"github.com/cedbrasil/enrolld/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	HeaderWebhookSignature = "x-signature"
	HeaderWebhookRequestID = "x-request-id"
)

// WebhookSignature verifies the payment processor's notification signature.
// The x-signature header carries "ts=<unix>,v1=<hex hmac>"; the signed
// manifest is "id:<data.id>;request-id:<x-request-id>;ts:<ts>;" keyed with
// the shared webhook secret. An empty secret disables verification.
func WebhookSignature(secret string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		ts, v1, ok := parseSignatureHeader(c.GetHeader(HeaderWebhookSignature))
		if !ok {
			response.Error(c, apperror.ErrInvalidWebhookSignature())
			c.Abort()
			return
		}

		dataID := c.Query("data.id")
		if dataID == "" {
			dataID = c.Query("id")
		}
		requestID := c.GetHeader(HeaderWebhookRequestID)

		manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", strings.ToLower(dataID), requestID, ts)
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write([]byte(manifest))
		expected := hex.EncodeToString(mac.Sum(nil))

		if !hmac.Equal([]byte(expected), []byte(strings.ToLower(v1))) {
			log.Warn().Str("request_id", requestID).Msg("webhook signature mismatch")
			response.Error(c, apperror.ErrInvalidWebhookSignature())
			c.Abort()
			return
		}

		c.Next()
	}
}

// parseSignatureHeader splits "ts=...,v1=..." into its parts.
func parseSignatureHeader(header string) (ts string, v1 string, ok bool) {
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "ts":
			ts = value
		case "v1":
			v1 = value
		}
	}
	return ts, v1, ts != "" && v1 != ""
}
