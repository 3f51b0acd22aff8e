package models

import (
	"fmt"
	"time"
)

// apiPath prefixes the resource URLs embedded in reference projections.
var apiPath = "/api"

// SetAPIPath overrides the URL prefix, typically with the deployment's public
// base path. Called once at startup, before any request is served.
func SetAPIPath(path string) {
	if path != "" {
		apiPath = path
	}
}

func resourceURL(entity string, id uint) string {
	return fmt.Sprintf("%s/%s/%d", apiPath, entity, id)
}

// timeLayout matches the wire format accepted by the controllers.
const timeLayout = "2006-01-02 15:04:05"

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}
