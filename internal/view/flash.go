package view

import (
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "carexyz_flash"

// Flash is a one-shot message surviving a redirect. Kind is "success" or
// "error" and picks the banner style.
type Flash struct {
	Kind    string
	Message string
}

func SetFlash(c *gin.Context, kind, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(kind + "|" + message))
	c.SetCookie(flashCookie, value, 60, "/", "", false, true)
}

// TakeFlash reads and clears the pending flash, if any.
func TakeFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}

	kind, message, ok := strings.Cut(string(decoded), "|")
	if !ok {
		return nil
	}
	return &Flash{Kind: kind, Message: message}
}
