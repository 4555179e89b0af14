package services

import (
	"errors"
	"fmt"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/nav"
)

var (
	// ErrContentNotFound signals a record that exists but is not publicly visible, or an empty slug.
	ErrContentNotFound = errors.New("services: content not found")
	// ErrInvalidMenuType signals a menu type outside domain.NavigationMenuTypes.
	ErrInvalidMenuType = errors.New("navigation: unsupported menu type")
	// ErrMenuNameConflict signals that another menu already uses the requested name.
	ErrMenuNameConflict = errors.New("navigation: menu name already in use")
	// ErrNoActiveMenu signals that no active menu of the requested type is stored.
	ErrNoActiveMenu = errors.New("navigation: no active menu for type")
)

// FetchError wraps a repository failure while listing menus.
type FetchError struct {
	MenuType domain.NavigationMenuType
	Err      error
}

func (e *FetchError) Error() string {
	if e.MenuType == "" {
		return fmt.Sprintf("navigation: fetch menus: %v", e.Err)
	}
	return fmt.Sprintf("navigation: fetch %s menus: %v", e.MenuType, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ValidationError rejects a menu write whose report contains errors.
type ValidationError struct {
	Report nav.Report
}

func (e *ValidationError) Error() string {
	errs := e.Report.Errors()
	if len(errs) == 0 {
		return "navigation: menu failed validation"
	}
	if len(errs) == 1 {
		return "navigation: menu failed validation: " + errs[0].Message
	}
	return fmt.Sprintf("navigation: menu failed validation: %s (and %d more)", errs[0].Message, len(errs)-1)
}
