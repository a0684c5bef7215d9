package surface

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrMountNotFound = fmt.Errorf("mount target: %w", commerr.ErrNotFound)
)

type Element interface {
	CreateChild(tag string) Element
	SetAttr(key, value string) Element
	SetText(text string) Element
}

// RenderTarget: the empty id names the surface root.
type RenderTarget interface {
	Mount(id string) (Element, error)
}
