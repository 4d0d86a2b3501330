// Package portal builds Azure Portal deep links for resources.
package portal

import (
	"errors"
	"fmt"

	"github.com/pkg/browser"
)

// ErrInvalidArgument is returned instead of emitting a malformed URL.
var ErrInvalidArgument = errors.New("invalid argument")

// BuildPortalURL formats a resource ID and tenant ID into a browser-openable
// Azure Portal URL. The resource ID already starts with "/subscriptions/...",
// so no separator is inserted after "resource".
func BuildPortalURL(resourceID, tenantID string) (string, error) {
	if resourceID == "" {
		return "", fmt.Errorf("%w: empty resource ID", ErrInvalidArgument)
	}
	if tenantID == "" {
		return "", fmt.Errorf("%w: empty tenant ID", ErrInvalidArgument)
	}
	return fmt.Sprintf("https://portal.azure.com/#@%s/resource%s", tenantID, resourceID), nil
}

// OpenInPortal opens the resource in the platform's default browser.
func OpenInPortal(resourceID, tenantID string) error {
	url, err := BuildPortalURL(resourceID, tenantID)
	if err != nil {
		return err
	}
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
